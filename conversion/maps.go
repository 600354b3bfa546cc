package conversion

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/francoispqt/gojay"
	"github.com/viant/convx/format/iso"
	"github.com/viant/convx/option"
	"github.com/viant/convx/registry"
)

func registerMaps(r registry.Registrar) {
	r.Register(mapType, stringType, mapToJSON)
	r.Register(mapType, durationType, mapToDuration)
}

type jsonObject struct {
	keys   []string
	values map[string]interface{}
}

func (o *jsonObject) MarshalJSONObject(enc *gojay.Encoder) {
	for _, key := range o.keys {
		if item := o.values[key]; item == nil {
			enc.AddNullKey(key)
		} else {
			enc.AddInterfaceKey(key, item)
		}
	}
}

func (o *jsonObject) IsNil() bool {
	return o == nil
}

type jsonArray []interface{}

func (a jsonArray) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range a {
		if item == nil {
			enc.AddNull()
		} else {
			enc.AddInterface(item)
		}
	}
}

func (a jsonArray) IsNil() bool {
	return a == nil
}

// mapToJSON encodes map with sorted keys, values gojay cannot encode natively are converted to string first
func mapToJSON(v interface{}, c registry.Converter, _ *option.Options) (interface{}, error) {
	object, err := newJSONObject(v.(map[string]interface{}), c)
	if err != nil {
		return nil, err
	}
	data, err := gojay.MarshalJSONObject(object)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func newJSONObject(aMap map[string]interface{}, c registry.Converter) (*jsonObject, error) {
	result := &jsonObject{keys: make([]string, 0, len(aMap)), values: make(map[string]interface{}, len(aMap))}
	for key, item := range aMap {
		encodable, err := jsonValue(item, c)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %v: %w", key, err)
		}
		result.keys = append(result.keys, key)
		result.values[key] = encodable
	}
	sort.Strings(result.keys)
	return result, nil
}

func jsonValue(item interface{}, c registry.Converter) (interface{}, error) {
	switch actual := item.(type) {
	case nil, string, bool, int, int8, int32, int64, uint8, uint16, uint32, float32:
		return actual, nil
	case int16:
		return int(actual), nil
	case uint:
		return jsonValue(uint64(actual), c)
	case uint64:
		if actual > math.MaxInt64 {
			return strconv.FormatUint(actual, 10), nil
		}
		return int64(actual), nil
	case float64:
		if math.IsNaN(actual) || math.IsInf(actual, 0) {
			return nil, finite(actual)
		}
		return actual, nil
	case map[string]interface{}:
		return newJSONObject(actual, c)
	case []byte:
		return c.Convert(actual, stringType)
	}
	rValue := reflect.ValueOf(item)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
		if rValue.Kind() == reflect.Slice && rValue.IsNil() {
			return nil, nil
		}
		if rValue.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		array := make(jsonArray, 0, rValue.Len())
		for i := 0; i < rValue.Len(); i++ {
			encodable, err := jsonValue(rValue.Index(i).Interface(), c)
			if err != nil {
				return nil, fmt.Errorf("failed to encode [%d]: %w", i, err)
			}
			array = append(array, encodable)
		}
		return array, nil
	case reflect.Map:
		if rValue.IsNil() {
			return nil, nil
		}
		converted, err := c.Convert(item, mapType)
		if err != nil {
			return nil, err
		}
		return newJSONObject(converted.(map[string]interface{}), c)
	}
	text, err := c.Convert(item, stringType)
	if err != nil {
		return nil, err
	}
	return text, nil
}

// mapToDuration reads seconds and nanos entries
func mapToDuration(v interface{}, c registry.Converter, _ *option.Options) (interface{}, error) {
	aMap := v.(map[string]interface{})
	var seconds, nanos int64
	for key, target := range map[string]*int64{secondsKey: &seconds, nanosKey: &nanos} {
		item, ok := aMap[key]
		if !ok || item == nil {
			continue
		}
		converted, err := c.Convert(item, int64Type)
		if err != nil {
			return nil, fmt.Errorf("invalid %v: %w", key, err)
		}
		*target = converted.(int64)
	}
	if seconds > math.MaxInt64/int64(time.Second) || seconds < math.MinInt64/int64(time.Second) {
		return nil, fmt.Errorf("%v seconds overflows duration", seconds)
	}
	return iso.Add(time.Duration(seconds)*time.Second, time.Duration(nanos))
}
