package xtype

import (
	"reflect"
	"strconv"
	"sync"
	"sync/atomic"
)

// ID identifies a conversion type. The zero ID (Nil) stands for an absent value.
type ID struct {
	rType reflect.Type
}

var (
	//Nil represents the source type of a nil value
	Nil = ID{}
	//Any represents the universal root type
	Any = For[interface{}]()
)

var (
	ordinals sync.Map // reflect.Type -> uint64
	sequence uint64
)

// TypeOf returns an ID for supplied reflect type, nil type maps to Nil
func TypeOf(t reflect.Type) ID {
	return ID{rType: t}
}

// Of returns runtime type ID of supplied value
func Of(value interface{}) ID {
	if value == nil {
		return Nil
	}
	return ID{rType: reflect.TypeOf(value)}
}

// For returns ID of the type parameter, interfaces included
func For[T any]() ID {
	return ID{rType: reflect.TypeOf((*T)(nil)).Elem()}
}

// IsNil returns true for the absent value type
func (i ID) IsNil() bool {
	return i.rType == nil
}

// Type returns underlying reflect type
func (i ID) Type() reflect.Type {
	return i.rType
}

// Kind returns reflect kind or reflect.Invalid for Nil
func (i ID) Kind() reflect.Kind {
	if i.rType == nil {
		return reflect.Invalid
	}
	return i.rType.Kind()
}

// IsInterface returns true if ID represents an interface type
func (i ID) IsInterface() bool {
	return i.Kind() == reflect.Interface
}

// IsNilable returns true if the type has a typed nil value
func (i ID) IsNilable() bool {
	switch i.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// Implements returns true if i implements iface
func (i ID) Implements(iface ID) bool {
	if i.rType == nil || !iface.IsInterface() {
		return false
	}
	return i.rType.Implements(iface.rType)
}

// Ordinal returns a process wide stable number for the type, 0 for Nil
func (i ID) Ordinal() uint64 {
	if i.rType == nil {
		return 0
	}
	if v, ok := ordinals.Load(i.rType); ok {
		return v.(uint64)
	}
	next := atomic.AddUint64(&sequence, 1)
	actual, _ := ordinals.LoadOrStore(i.rType, next)
	return actual.(uint64)
}

// Name returns a type name qualified with the full package path
func (i ID) Name() string {
	if i.rType == nil {
		return "<nil>"
	}
	if pkg := i.rType.PkgPath(); pkg != "" && i.rType.Name() != "" {
		return pkg + "." + i.rType.Name()
	}
	return i.rType.String()
}

func (i ID) String() string {
	if i.rType == nil {
		return "<nil>"
	}
	return i.rType.String()
}

// PairKey returns a compact identity of a (source, target) pair
func PairKey(source, target ID) string {
	return strconv.FormatUint(source.Ordinal(), 36) + ":" + strconv.FormatUint(target.Ordinal(), 36)
}
