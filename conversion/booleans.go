package conversion

import (
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/viant/convx/option"
	"github.com/viant/convx/registry"
	"github.com/viant/convx/xtype"
)

func registerBooleans(r registry.Registrar) {
	for _, target := range numericTypes {
		r.Register(boolType, target, boolToNumeric(target))
	}
	r.Register(boolType, stringType, boolToString)
	r.Register(boolType, charType, boolToChar)
	r.Register(boolType, bigIntType, boolToBigInt)
	r.Register(boolType, decimalType, boolToDecimal)
}

func boolToNumeric(target xtype.ID) registry.Func {
	one, zero := as(1, target), as(0, target)
	return func(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
		if v.(bool) {
			return one, nil
		}
		return zero, nil
	}
}

func boolToString(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return strconv.FormatBool(v.(bool)), nil
}

func boolToChar(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	if v.(bool) {
		return opts.TrueChar(), nil
	}
	return opts.FalseChar(), nil
}

func boolToBigInt(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	if v.(bool) {
		return big.NewInt(1), nil
	}
	return new(big.Int), nil
}

func boolToDecimal(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	if v.(bool) {
		return decimal.NewFromInt(1), nil
	}
	return decimal.Zero, nil
}

