package conversion

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/viant/convx/option"
	"github.com/viant/convx/registry"
	"github.com/viant/convx/xtype"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

var structInfos sync.Map // reflect.Type -> *structInfo

type (
	structField struct {
		xField   *xunsafe.Field
		name     string
		explicit bool
		inline   *structInfo
	}

	structInfo struct {
		fields []*structField
	}
)

func registerStructs(r registry.Registrar) {
	r.Register(xtype.Any, mapType, anyToMap)
	if guarder, ok := r.(registry.Guarder); ok {
		guarder.Guard(xtype.Any, mapType, mappable)
	}
}

// mappable accepts struct, struct pointer and map sources
func mappable(source xtype.ID) bool {
	switch source.Kind() {
	case reflect.Struct, reflect.Map:
		return true
	case reflect.Ptr:
		return source.Type().Elem().Kind() == reflect.Struct
	}
	return false
}

// anyToMap converts struct, struct pointer or any keyed map into map[string]interface{}
func anyToMap(v interface{}, c registry.Converter, opts *option.Options) (interface{}, error) {
	rValue := reflect.ValueOf(v)
	switch rValue.Kind() {
	case reflect.Map:
		return mapToStringKeyed(rValue, c)
	case reflect.Ptr:
		if rValue.IsNil() || rValue.Elem().Kind() != reflect.Struct {
			break
		}
		result := map[string]interface{}{}
		info := structInfoOf(rValue.Elem().Type())
		info.collect(xunsafe.AsPointer(v), opts.CaseFormat(), result)
		return result, nil
	case reflect.Struct:
		ptr := reflect.New(rValue.Type())
		ptr.Elem().Set(rValue)
		result := map[string]interface{}{}
		info := structInfoOf(rValue.Type())
		info.collect(xunsafe.AsPointer(ptr.Interface()), opts.CaseFormat(), result)
		return result, nil
	}
	return nil, fmt.Errorf("expected struct or map, but had %T", v)
}

func mapToStringKeyed(rValue reflect.Value, c registry.Converter) (map[string]interface{}, error) {
	result := make(map[string]interface{}, rValue.Len())
	iter := rValue.MapRange()
	for iter.Next() {
		key, err := c.Convert(iter.Key().Interface(), stringType)
		if err != nil {
			return nil, fmt.Errorf("invalid map key %v: %w", iter.Key().Interface(), err)
		}
		result[key.(string)] = iter.Value().Interface()
	}
	return result, nil
}

func (s *structInfo) collect(ptr unsafe.Pointer, caseFormat text.CaseFormat, dest map[string]interface{}) {
	for _, field := range s.fields {
		if field.inline != nil {
			fieldPtr := field.xField.Pointer(ptr)
			field.inline.collect(fieldPtr, caseFormat, dest)
			continue
		}
		dest[field.key(caseFormat)] = field.xField.Value(ptr)
	}
}

func (f *structField) key(caseFormat text.CaseFormat) string {
	if f.explicit || !caseFormat.IsDefined() {
		return f.name
	}
	src := text.DetectCaseFormat(f.name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(f.name, caseFormat)
}

func structInfoOf(t reflect.Type) *structInfo {
	if v, ok := structInfos.Load(t); ok {
		return v.(*structInfo)
	}
	info := &structInfo{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, _ := format.Parse(field.Tag)
		if tag != nil && tag.Ignore {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			info.fields = append(info.fields, &structField{xField: xunsafe.NewField(field), inline: structInfoOf(field.Type)})
			continue
		}
		if !field.IsExported() {
			continue
		}
		aField := &structField{xField: xunsafe.NewField(field), name: field.Name}
		if tag != nil && tag.Name != "" {
			aField.name = tag.Name
			aField.explicit = true
		}
		info.fields = append(info.fields, aField)
	}
	actual, _ := structInfos.LoadOrStore(t, info)
	return actual.(*structInfo)
}
