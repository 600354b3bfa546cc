package xtype

import (
	"reflect"
)

var basicTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:       reflect.TypeOf(false),
	reflect.Int:        reflect.TypeOf(int(0)),
	reflect.Int8:       reflect.TypeOf(int8(0)),
	reflect.Int16:      reflect.TypeOf(int16(0)),
	reflect.Int32:      reflect.TypeOf(int32(0)),
	reflect.Int64:      reflect.TypeOf(int64(0)),
	reflect.Uint:       reflect.TypeOf(uint(0)),
	reflect.Uint8:      reflect.TypeOf(uint8(0)),
	reflect.Uint16:     reflect.TypeOf(uint16(0)),
	reflect.Uint32:     reflect.TypeOf(uint32(0)),
	reflect.Uint64:     reflect.TypeOf(uint64(0)),
	reflect.Uintptr:    reflect.TypeOf(uintptr(0)),
	reflect.Float32:    reflect.TypeOf(float32(0)),
	reflect.Float64:    reflect.TypeOf(float64(0)),
	reflect.Complex64:  reflect.TypeOf(complex64(0)),
	reflect.Complex128: reflect.TypeOf(complex128(0)),
	reflect.String:     reflect.TypeOf(""),
}

// derivedParent returns the implicit supertype of a Go type
func derivedParent(id ID) (Ancestor, bool) {
	t := id.Type()
	if t == nil {
		return Ancestor{}, false
	}
	switch t.Kind() {
	case reflect.Ptr:
		return Ancestor{ID: TypeOf(t.Elem()), Upcast: deref}, true
	case reflect.Struct:
		return embeddedParent(t)
	case reflect.Slice:
		if t.Name() == "" {
			return Ancestor{}, false
		}
		return underlying(t, reflect.SliceOf(t.Elem()))
	case reflect.Map:
		if t.Name() == "" {
			return Ancestor{}, false
		}
		return underlying(t, reflect.MapOf(t.Key(), t.Elem()))
	case reflect.Interface, reflect.Invalid:
		return Ancestor{}, false
	}
	basic, ok := basicTypes[t.Kind()]
	if !ok {
		return Ancestor{}, false
	}
	return underlying(t, basic)
}

func underlying(t, u reflect.Type) (Ancestor, bool) {
	if t == u {
		return Ancestor{}, false
	}
	return Ancestor{ID: TypeOf(u), Upcast: func(value interface{}) (interface{}, error) {
		return reflect.ValueOf(value).Convert(u).Interface(), nil
	}}, true
}

// embeddedParent uses the first exported embedded struct (or pointer to struct) field as the parent
func embeddedParent(t reflect.Type) (Ancestor, bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.Anonymous || !field.IsExported() {
			continue
		}
		fieldType := field.Type
		if fieldType.Kind() == reflect.Ptr {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() != reflect.Struct {
			continue
		}
		index := i
		return Ancestor{ID: TypeOf(field.Type), Upcast: func(value interface{}) (interface{}, error) {
			return reflect.ValueOf(value).Field(index).Interface(), nil
		}}, true
	}
	return Ancestor{}, false
}

func deref(value interface{}) (interface{}, error) {
	v := reflect.ValueOf(value)
	if v.IsNil() {
		return nil, ErrNilPointer
	}
	return v.Elem().Interface(), nil
}
