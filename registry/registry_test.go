package registry

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sync"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/convx/option"
	"github.com/viant/convx/xtype"
)

type Named interface {
	GetName() string
}

type Animal struct {
	Name string
}

func (a Animal) GetName() string { return a.Name }

type Dog struct {
	Animal
	Breed string
}

type unregisteredX struct{}

type unregisteredY struct{}

var stringType = xtype.For[string]()

func constant(text string) Func {
	return func(value interface{}, _ Converter, _ *option.Options) (interface{}, error) {
		return text, nil
	}
}

func newTestRegistry() *Registry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(nil, logger)
}

func TestRegistry_LookupExact(t *testing.T) {
	registry := newTestRegistry()
	key := NewKey(xtype.For[int](), stringType)
	_, ok := registry.LookupExact(key)
	assert.False(t, ok)

	assert.False(t, registry.Register(key.Source, key.Target, constant("first")))
	assert.True(t, registry.Register(key.Source, key.Target, constant("second")), "second registration replaces")
	fn, ok := registry.LookupExact(key)
	require.True(t, ok)
	actual, err := fn(1, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, "second", actual)
	assert.True(t, registry.Registered(key))
	assert.EqualValues(t, []Key{key}, registry.Pairs())
}

func TestRegistry_Lookup_TieBreak(t *testing.T) {
	registry := newTestRegistry()
	registry.Register(xtype.For[Named](), stringType, constant("named"))
	registry.Register(xtype.For[Animal](), stringType, func(value interface{}, _ Converter, _ *option.Options) (interface{}, error) {
		return "animal:" + value.(Animal).Name, nil
	})
	key := NewKey(xtype.For[Dog](), stringType)
	for i := 0; i < 3; i++ {
		resolution, err := registry.Lookup(key)
		require.Nil(t, err)
		assert.Equal(t, xtype.For[Animal](), resolution.Via.Source)
		assert.False(t, resolution.Direct())
		actual, err := resolution.Func(Dog{Animal: Animal{Name: "rex"}}, nil, nil)
		assert.Nil(t, err)
		assert.Equal(t, "animal:rex", actual)
	}
	cached, ok := registry.Cached(key)
	assert.True(t, ok)
	assert.Equal(t, xtype.For[Animal](), cached.Via.Source)
}

func TestRegistry_Lookup_Interface(t *testing.T) {
	registry := newTestRegistry()
	registry.Register(xtype.For[Named](), stringType, func(value interface{}, _ Converter, _ *option.Options) (interface{}, error) {
		return "named:" + value.(Named).GetName(), nil
	})
	resolution, err := registry.Lookup(NewKey(xtype.For[*Dog](), stringType))
	require.Nil(t, err)
	actual, err := resolution.Func(&Dog{Animal: Animal{Name: "max"}}, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, "named:max", actual)
}

func TestRegistry_Lookup_CacheTransparency(t *testing.T) {
	registry := newTestRegistry()
	registry.Register(xtype.For[Named](), stringType, constant("named"))
	key := NewKey(xtype.For[Dog](), stringType)
	resolution, err := registry.Lookup(key)
	require.Nil(t, err)
	first, _ := resolution.Func(Dog{}, nil, nil)
	assert.Equal(t, "named", first)

	registry.Register(xtype.For[Animal](), stringType, constant("animal"))
	resolution, err = registry.Lookup(key)
	require.Nil(t, err)
	second, _ := resolution.Func(Dog{}, nil, nil)
	assert.Equal(t, first, second, "warm cache is not changed by an ancestor registration")

	registry.Register(xtype.For[Dog](), stringType, constant("dog"))
	resolution, err = registry.Lookup(key)
	require.Nil(t, err)
	third, _ := resolution.Func(Dog{}, nil, nil)
	assert.Equal(t, "dog", third, "exact table wins over cache")
}

func TestRegistry_Lookup_Unresolved(t *testing.T) {
	registry := newTestRegistry()
	key := NewKey(xtype.For[unregisteredX](), xtype.For[unregisteredY]())
	assert.False(t, registry.Supported(key))
	_, err := registry.Lookup(key)
	assert.True(t, IsUnresolved(err))
	assert.True(t, errdefs.IsNotFound(err))
	_, ok := registry.Cached(key)
	assert.False(t, ok, "failed resolution is not cached")

	registry.Register(xtype.Any, key.Target, constant("any"))
	assert.True(t, registry.Supported(key), "new registration becomes visible")
}

func TestRegistry_Lookup_Nil(t *testing.T) {
	registry := newTestRegistry()
	registry.Register(xtype.Nil, xtype.For[int](), func(interface{}, Converter, *option.Options) (interface{}, error) {
		return 0, nil
	})
	var testCases = []struct {
		description string
		target      xtype.ID
		expect      interface{}
		hasError    bool
	}{
		{description: "registered", target: xtype.For[int](), expect: 0},
		{description: "pointer", target: xtype.For[*Dog](), expect: (*Dog)(nil)},
		{description: "slice", target: xtype.For[[]string](), expect: []string(nil)},
		{description: "interface", target: xtype.For[Named]()},
		{description: "struct", target: xtype.For[Dog](), hasError: true},
		{description: "float", target: xtype.For[float64](), hasError: true},
	}
	for _, testCase := range testCases {
		resolution, err := registry.Lookup(NewKey(xtype.Nil, testCase.target))
		if testCase.hasError {
			assert.True(t, IsUnresolved(err), testCase.description)
			continue
		}
		require.Nil(t, err, testCase.description)
		actual, err := resolution.Func(nil, nil, nil)
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestRegistry_Lookup_InterfaceTarget(t *testing.T) {
	registry := newTestRegistry()
	resolution, err := registry.Lookup(NewKey(xtype.For[Dog](), xtype.For[Named]()))
	require.Nil(t, err)
	dog := Dog{Animal: Animal{Name: "rex"}}
	actual, err := resolution.Func(dog, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, dog, actual)

	resolution, err = registry.Lookup(NewKey(xtype.For[int](), xtype.Any))
	require.Nil(t, err)
	actual, _ = resolution.Func(3, nil, nil)
	assert.Equal(t, 3, actual)

	_, err = registry.Lookup(NewKey(xtype.For[int](), xtype.For[Named]()))
	assert.True(t, IsUnresolved(err))

	_, err = registry.Lookup(NewKey(xtype.For[int](), xtype.Nil))
	assert.True(t, errors.Is(err, ErrInvalidTarget))
}

func TestRegistry_Lookup_UpcastError(t *testing.T) {
	registry := newTestRegistry()
	registry.Register(xtype.For[Dog](), stringType, constant("dog"))
	resolution, err := registry.Lookup(NewKey(xtype.For[*Dog](), stringType))
	require.Nil(t, err)
	_, err = resolution.Func((*Dog)(nil), nil, nil)
	assert.ErrorIs(t, err, xtype.ErrNilPointer)
}

func TestRegistry_Lookup_Concurrent(t *testing.T) {
	registry := newTestRegistry()
	registry.Register(xtype.For[Animal](), stringType, constant("animal"))
	var wg sync.WaitGroup
	results := make([]*Resolution, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resolution, err := registry.Lookup(NewKey(xtype.For[Dog](), stringType))
			if err != nil {
				panic(fmt.Sprintf("unexpected error: %v", err))
			}
			results[i] = resolution
		}(i)
	}
	wg.Wait()
	cached, ok := registry.Cached(NewKey(xtype.For[Dog](), stringType))
	require.True(t, ok)
	for _, resolution := range results {
		assert.Same(t, cached, resolution)
	}
}

func TestRegistry_Add(t *testing.T) {
	registry := newTestRegistry()
	assert.True(t, registry.Add(xtype.For[int](), stringType, constant("first")))
	assert.False(t, registry.Add(xtype.For[int](), stringType, constant("second")))
	resolution, err := registry.Lookup(NewKey(xtype.For[int](), stringType))
	require.Nil(t, err)
	actual, err := resolution.Func(1, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, "first", actual)

	assert.True(t, registry.Add(xtype.For[Named](), stringType, constant("named")))
	assert.Equal(t, []xtype.ID{xtype.For[Named]()}, registry.Hierarchy().Interfaces())
}

func TestRegistry_Guard(t *testing.T) {
	registry := newTestRegistry()
	target := xtype.For[unregisteredY]()
	registry.Register(xtype.Any, target, constant("any"))
	assert.False(t, registry.Guard(xtype.For[int](), target, nil), "missing entry")
	require.True(t, registry.Guard(xtype.Any, target, func(source xtype.ID) bool {
		return source.Kind() == reflect.Struct
	}))

	var testCases = []struct {
		description string
		source      xtype.ID
		expect      bool
	}{
		{description: "accepted struct", source: xtype.For[Dog](), expect: true},
		{description: "rejected scalar", source: xtype.For[int](), expect: false},
		{description: "rejected through pointer", source: xtype.For[*Dog](), expect: false},
		{description: "exact entry ignores guard", source: xtype.Any, expect: true},
	}
	for _, testCase := range testCases {
		key := NewKey(testCase.source, target)
		assert.Equal(t, testCase.expect, registry.Supported(key), testCase.description)
		if !testCase.expect {
			_, ok := registry.Cached(key)
			assert.False(t, ok, testCase.description)
		}
	}
}
