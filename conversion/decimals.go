package conversion

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/viant/convx/option"
	"github.com/viant/convx/registry"
	"github.com/viant/convx/xtype"
)

func registerDecimals(r registry.Registrar) {
	r.Register(decimalType, timeType, decimalToTime)
	r.Register(decimalType, durationType, decimalToDuration)
	r.Register(decimalType, bigIntType, decimalToBigInt)
	r.Register(decimalType, stringType, decimalToString)
	r.Register(decimalType, uuidType, decimalToUUID)
	r.Register(decimalType, boolType, decimalToBool)
	for _, target := range integerTypes {
		r.Register(decimalType, target, decimalToInteger(target))
	}
	for _, target := range floatTypes {
		r.Register(decimalType, target, decimalToFloat(target))
	}

	r.Register(bigIntType, stringType, bigIntToString)
	r.Register(bigIntType, decimalType, bigIntToDecimal)
	r.Register(bigIntType, uuidType, bigIntToUUID)
	r.Register(bigIntType, boolType, bigIntToBool)
	for _, target := range numericTypes {
		r.Register(bigIntType, target, bigIntToNumeric(target))
	}
	r.Register(uuidType, bigIntType, uuidToBigInt)
}

// decimalToTime treats decimal as epoch seconds with fractional nanoseconds
func decimalToTime(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	seconds := v.(decimal.Decimal)
	whole := seconds.Truncate(0)
	if whole.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || whole.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return nil, fmt.Errorf("%v seconds outside time range", seconds.String())
	}
	nanos := seconds.Sub(whole).Shift(9).IntPart()
	return time.Unix(whole.IntPart(), nanos).In(opts.Zone()), nil
}

func decimalToDuration(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return durationOf(v.(decimal.Decimal))
}

func decimalToBigInt(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return v.(decimal.Decimal).BigInt(), nil
}

// decimalToString returns plain text without trailing zeros
func decimalToString(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return v.(decimal.Decimal).String(), nil
}

func decimalToUUID(v interface{}, c registry.Converter, opts *option.Options) (interface{}, error) {
	return bigIntToUUID(v.(decimal.Decimal).BigInt(), c, opts)
}

func decimalToBool(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return !v.(decimal.Decimal).IsZero(), nil
}

func decimalToInteger(target xtype.ID) registry.Func {
	return func(v interface{}, c registry.Converter, opts *option.Options) (interface{}, error) {
		return bigIntToNumeric(target)(v.(decimal.Decimal).BigInt(), c, opts)
	}
}

func decimalToFloat(target xtype.ID) registry.Func {
	return func(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
		return as(v.(decimal.Decimal).InexactFloat64(), target), nil
	}
}

func bigIntToString(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return v.(*big.Int).String(), nil
}

func bigIntToDecimal(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return decimal.NewFromBigInt(v.(*big.Int), 0), nil
}

func bigIntToBool(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return v.(*big.Int).Sign() != 0, nil
}

// bigIntToNumeric narrows big integer with go conversion rules
func bigIntToNumeric(target xtype.ID) registry.Func {
	return func(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
		value := v.(*big.Int)
		switch {
		case value.IsInt64():
			return as(value.Int64(), target), nil
		case value.IsUint64():
			return as(value.Uint64(), target), nil
		}
		f, _ := new(big.Float).SetInt(value).Float64()
		switch target.Kind() {
		case reflect.Float32, reflect.Float64:
			return as(f, target), nil
		}
		return nil, fmt.Errorf("value %v outside %v range", value, target.Kind())
	}
}

// bigIntToUUID uses the 128 low bits as most and least significant UUID bytes
func bigIntToUUID(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	value := v.(*big.Int)
	if value.Sign() < 0 || value.BitLen() > 128 {
		return nil, fmt.Errorf("value %v outside UUID range", value)
	}
	var result uuid.UUID
	value.FillBytes(result[:])
	return result, nil
}

func uuidToBigInt(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	id := v.(uuid.UUID)
	return new(big.Int).SetBytes(id[:]), nil
}
