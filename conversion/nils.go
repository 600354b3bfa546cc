package conversion

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/viant/convx/option"
	"github.com/viant/convx/registry"
	"github.com/viant/convx/value"
	"github.com/viant/convx/xtype"
)

// registerNils registers zero values for nil source and non nilable targets
func registerNils(r registry.Registrar) {
	for _, target := range numericTypes {
		r.Register(xtype.Nil, target, zeroOf(as(0, target)))
	}
	r.Register(xtype.Nil, boolType, zeroOf(false))
	r.Register(xtype.Nil, stringType, zeroOf(""))
	r.Register(xtype.Nil, charType, zeroOf(value.Char(0)))
	r.Register(xtype.Nil, decimalType, zeroOf(decimal.Zero))
	r.Register(xtype.Nil, durationType, zeroOf(time.Duration(0)))
}

func zeroOf(zero interface{}) registry.Func {
	return func(interface{}, registry.Converter, *option.Options) (interface{}, error) {
		return zero, nil
	}
}
