package xtype

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

type Puppy struct {
	*Dog
}

type Celsius float64

type Tags []string

func TestID(t *testing.T) {
	var testCases = []struct {
		description string
		id          ID
		expectNil   bool
		expectName  string
	}{
		{description: "nil value", id: Of(nil), expectNil: true, expectName: "<nil>"},
		{description: "basic", id: Of(1), expectName: "int"},
		{description: "named", id: Of(time.Second), expectName: "time.Duration"},
		{description: "interface", id: For[fmt.Stringer](), expectName: "fmt.Stringer"},
		{description: "any", id: Any, expectName: "interface {}"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expectNil, testCase.id.IsNil(), testCase.description)
		assert.Equal(t, testCase.expectName, testCase.id.String(), testCase.description)
	}
	assert.Equal(t, Of(""), For[string]())
	assert.Equal(t, Of(Animal{}).Ordinal(), For[Animal]().Ordinal())
	assert.NotEqual(t, Of(Animal{}).Ordinal(), Of(Dog{}).Ordinal())
	assert.Equal(t, uint64(0), Nil.Ordinal())
	assert.Equal(t, "github.com/viant/convx/xtype.Dog", For[Dog]().Name())
	assert.True(t, For[*Dog]().IsNilable())
	assert.False(t, For[Dog]().IsNilable())
}

func TestHierarchy_Chain(t *testing.T) {
	var testCases = []struct {
		description string
		id          ID
		expect      []ID
	}{
		{description: "embedded struct", id: For[Dog](), expect: []ID{For[Animal]()}},
		{description: "pointer", id: For[*Dog](), expect: []ID{For[Dog](), For[Animal]()}},
		{description: "embedded pointer", id: For[Puppy](), expect: []ID{For[*Dog](), For[Dog](), For[Animal]()}},
		{description: "named float", id: For[Celsius](), expect: []ID{For[float64]()}},
		{description: "named slice", id: For[Tags](), expect: []ID{For[[]string]()}},
		{description: "duration", id: For[time.Duration](), expect: []ID{For[int64]()}},
		{description: "basic", id: For[string]()},
	}
	hierarchy := NewHierarchy()
	for _, testCase := range testCases {
		var actual []ID
		for _, ancestor := range hierarchy.Chain(testCase.id) {
			actual = append(actual, ancestor.ID)
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestHierarchy_Ancestors(t *testing.T) {
	hierarchy := NewHierarchy()
	assert.True(t, hierarchy.AddInterface(For[fmt.Stringer]()))
	assert.True(t, hierarchy.AddInterface(For[Named]()))
	assert.False(t, hierarchy.AddInterface(For[Named]()))
	assert.False(t, hierarchy.AddInterface(For[Dog]()))

	ancestors := hierarchy.Ancestors(For[Dog]())
	var ids []ID
	for _, ancestor := range ancestors {
		ids = append(ids, ancestor.ID)
	}
	assert.EqualValues(t, []ID{For[Animal](), For[Named](), Any}, ids)

	puppy := Puppy{Dog: &Dog{Animal: Animal{Name: "rex"}}}
	ancestors = hierarchy.Ancestors(For[Puppy]())
	require.Equal(t, For[Named](), ancestors[3].ID)
	named, err := ancestors[3].Cast(puppy)
	require.Nil(t, err)
	assert.Equal(t, "rex", named.(Named).GetName())

	animal, err := ancestors[2].Cast(puppy)
	require.Nil(t, err)
	assert.Equal(t, Animal{Name: "rex"}, animal)

	_, err = ancestors[1].Cast(Puppy{})
	assert.ErrorIs(t, err, ErrNilPointer)
}

func TestHierarchy_Extend(t *testing.T) {
	type Base struct{ ID int }
	type Wrapper struct{ Value Base }
	hierarchy := NewHierarchy()
	assert.Empty(t, hierarchy.Chain(For[Wrapper]()))

	err := hierarchy.Extend(For[Wrapper](), For[Base](), func(value interface{}) (interface{}, error) {
		return value.(Wrapper).Value, nil
	})
	require.Nil(t, err)
	chain := hierarchy.Chain(For[Wrapper]())
	require.Len(t, chain, 1)
	base, err := chain[0].Cast(Wrapper{Value: Base{ID: 7}})
	require.Nil(t, err)
	assert.Equal(t, Base{ID: 7}, base)

	assert.NotNil(t, hierarchy.Extend(For[Base](), For[Wrapper](), nil), "cycle")
	assert.NotNil(t, hierarchy.Extend(For[Base](), For[Base](), nil), "self")
	assert.NotNil(t, hierarchy.Extend(For[Base](), For[Named](), nil), "interface")
	assert.NotNil(t, hierarchy.Extend(Nil, For[Base](), nil), "nil")
}

func TestHierarchy_Extend_LateChainWrite(t *testing.T) {
	type Base struct{ ID int }
	type Wrapper struct{ Value Base }
	hierarchy := NewHierarchy()
	wrapper := For[Wrapper]()
	assert.Empty(t, hierarchy.Chain(wrapper))
	before := hierarchy.generation.Load()

	require.Nil(t, hierarchy.Extend(wrapper, For[Base](), func(value interface{}) (interface{}, error) {
		return value.(Wrapper).Value, nil
	}))
	//chain computed before Extend is written back after it
	hierarchy.chains.Store(wrapper, &chainEntry{generation: before})

	chain := hierarchy.Chain(wrapper)
	require.Len(t, chain, 1)
	assert.Equal(t, For[Base](), chain[0].ID)
}

func TestHierarchy_Underlying(t *testing.T) {
	hierarchy := NewHierarchy()
	chain := hierarchy.Chain(For[Celsius]())
	require.Len(t, chain, 1)
	value, err := chain[0].Cast(Celsius(21.5))
	require.Nil(t, err)
	assert.Equal(t, 21.5, value)
}
