package conversion

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/viant/convx/option"
	"github.com/viant/convx/registry"
	"github.com/viant/convx/value"
	"github.com/viant/convx/xtype"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LocalizedNumbers custom option name, when true float to string conversion uses options locale
const LocalizedNumbers = "localizedNumbers"

var (
	signedTypes = []xtype.ID{
		xtype.For[int](), xtype.For[int8](), xtype.For[int16](), xtype.For[int32](), xtype.For[int64](),
	}
	unsignedTypes = []xtype.ID{
		xtype.For[uint](), xtype.For[uint8](), xtype.For[uint16](), xtype.For[uint32](), xtype.For[uint64](),
	}
	floatTypes = []xtype.ID{
		xtype.For[float32](), xtype.For[float64](),
	}
	integerTypes = append(append([]xtype.ID{}, signedTypes...), unsignedTypes...)
	numericTypes = append(append([]xtype.ID{}, integerTypes...), floatTypes...)
)

func registerNumerics(r registry.Registrar) {
	for _, source := range numericTypes {
		for _, target := range numericTypes {
			r.Register(source, target, convertNumeric(target))
		}
		r.Register(source, boolType, numericToBool)
		r.Register(source, stringType, numericToString)
		r.Register(source, decimalType, numericToDecimal)
		r.Register(source, bigIntType, numericToBigInt)
		r.Register(source, charType, numericToChar)
	}
	//integers are nanoseconds
	for _, source := range integerTypes {
		r.Register(source, durationType, convertNumeric(durationType))
	}
}

func convertNumeric(target xtype.ID) registry.Func {
	return func(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
		return as(v, target), nil
	}
}

func numericToBool(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	rValue := reflect.ValueOf(v)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rValue.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rValue.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rValue.Float() != 0, nil
	}
	return nil, unsupportedKind(v)
}

func numericToString(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	rValue := reflect.ValueOf(v)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rValue.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rValue.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		f := rValue.Float()
		if opts != nil && opts.CustomBool(LocalizedNumbers) && !math.IsNaN(f) && !math.IsInf(f, 0) {
			printer := message.NewPrinter(opts.Locale())
			return printer.Sprint(number.Decimal(f)), nil
		}
		return strconv.FormatFloat(f, 'f', -1, rValue.Type().Bits()), nil
	}
	return nil, unsupportedKind(v)
}

func numericToDecimal(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	rValue := reflect.ValueOf(v)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decimal.NewFromUint64(rValue.Uint()), nil
	case reflect.Float32:
		f := rValue.Float()
		if err := finite(f); err != nil {
			return nil, err
		}
		return decimal.NewFromFloat32(float32(f)), nil
	case reflect.Float64:
		f := rValue.Float()
		if err := finite(f); err != nil {
			return nil, err
		}
		return decimal.NewFromFloat(f), nil
	}
	return nil, unsupportedKind(v)
}

func numericToBigInt(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	rValue := reflect.ValueOf(v)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(rValue.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rValue.Float()
		if err := finite(f); err != nil {
			return nil, err
		}
		return decimal.NewFromFloat(f).BigInt(), nil
	}
	return nil, unsupportedKind(v)
}

func numericToChar(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	rValue := reflect.ValueOf(v)
	var code int64
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		code = rValue.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rValue.Uint() > utf8.MaxRune {
			return nil, fmt.Errorf("value %v outside character range", v)
		}
		code = int64(rValue.Uint())
	case reflect.Float32, reflect.Float64:
		code = int64(rValue.Float())
	default:
		return nil, unsupportedKind(v)
	}
	if code < 0 || code > utf8.MaxRune {
		return nil, fmt.Errorf("value %v outside character range", v)
	}
	return value.Char(code), nil
}

func finite(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%v is not a finite number", f)
	}
	return nil
}

func unsupportedKind(v interface{}) error {
	return fmt.Errorf("unsupported value kind: %T", v)
}

// durationOf returns nanoseconds duration for whole and fractional seconds
func durationOf(seconds decimal.Decimal) (time.Duration, error) {
	nanos := seconds.Shift(9).Truncate(0)
	if nanos.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || nanos.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return 0, fmt.Errorf("%v seconds overflows duration", seconds.String())
	}
	return time.Duration(nanos.IntPart()), nil
}
