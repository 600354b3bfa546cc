// Package conversion defines the built-in conversion catalog
package conversion

import (
	"fmt"
	"math/big"
	"net/url"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/viant/convx/registry"
	"github.com/viant/convx/value"
	"github.com/viant/convx/xtype"
	"golang.org/x/text/language"
)

var (
	stringType    = xtype.For[string]()
	boolType      = xtype.For[bool]()
	int64Type     = xtype.For[int64]()
	float64Type   = xtype.For[float64]()
	charType      = xtype.For[value.Char]()
	bytesType     = xtype.For[[]byte]()
	runesType     = xtype.For[[]rune]()
	bigIntType    = xtype.For[*big.Int]()
	decimalType   = xtype.For[decimal.Decimal]()
	durationType  = xtype.For[time.Duration]()
	timeType      = xtype.For[time.Time]()
	locationType  = xtype.For[*time.Location]()
	periodType    = xtype.For[value.Period]()
	monthDayType  = xtype.For[value.MonthDay]()
	yearMonthType = xtype.For[value.YearMonth]()
	yearType      = xtype.For[value.Year]()
	uuidType      = xtype.For[uuid.UUID]()
	urlType       = xtype.For[*url.URL]()
	localeType    = xtype.For[language.Tag]()
	typeType      = xtype.For[reflect.Type]()
	mapType       = xtype.For[map[string]interface{}]()
	stringerType  = xtype.For[fmt.Stringer]()
	errorType     = xtype.For[error]()
)

// Register registers all built-in conversions
func Register(r registry.Registrar) {
	registerNumerics(r)
	registerStrings(r)
	registerBooleans(r)
	registerChars(r)
	registerDecimals(r)
	registerDurations(r)
	registerTimes(r)
	registerMaps(r)
	registerStructs(r)
	registerInterfaces(r)
	registerNils(r)
}

// as converts numeric value into target kind with go conversion rules
func as(v interface{}, target xtype.ID) interface{} {
	return reflect.ValueOf(v).Convert(target.Type()).Interface()
}
