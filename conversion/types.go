package conversion

import (
	"math/big"
	"net/url"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/viant/convx/value"
	"golang.org/x/text/language"
)

// builtinTypes resolves predeclared and well known type names when the options type loader does not
var builtinTypes = map[string]reflect.Type{
	"bool":                   reflect.TypeOf(false),
	"string":                 reflect.TypeOf(""),
	"int":                    reflect.TypeOf(0),
	"int8":                   reflect.TypeOf(int8(0)),
	"int16":                  reflect.TypeOf(int16(0)),
	"int32":                  reflect.TypeOf(int32(0)),
	"rune":                   reflect.TypeOf(int32(0)),
	"int64":                  reflect.TypeOf(int64(0)),
	"uint":                   reflect.TypeOf(uint(0)),
	"uint8":                  reflect.TypeOf(uint8(0)),
	"byte":                   reflect.TypeOf(uint8(0)),
	"uint16":                 reflect.TypeOf(uint16(0)),
	"uint32":                 reflect.TypeOf(uint32(0)),
	"uint64":                 reflect.TypeOf(uint64(0)),
	"float32":                reflect.TypeOf(float32(0)),
	"float64":                reflect.TypeOf(float64(0)),
	"[]byte":                 reflect.TypeOf([]byte{}),
	"[]rune":                 reflect.TypeOf([]rune{}),
	"interface{}":            reflect.TypeOf((*interface{})(nil)).Elem(),
	"any":                    reflect.TypeOf((*interface{})(nil)).Elem(),
	"error":                  reflect.TypeOf((*error)(nil)).Elem(),
	"map[string]interface{}": reflect.TypeOf(map[string]interface{}{}),
	"time.Time":              reflect.TypeOf(time.Time{}),
	"time.Duration":          reflect.TypeOf(time.Duration(0)),
	"*time.Location":         reflect.TypeOf(time.UTC),
	"*big.Int":               reflect.TypeOf(new(big.Int)),
	"*url.URL":               reflect.TypeOf(&url.URL{}),
	"uuid.UUID":              reflect.TypeOf(uuid.UUID{}),
	"decimal.Decimal":        reflect.TypeOf(decimal.Decimal{}),
	"language.Tag":           reflect.TypeOf(language.Tag{}),
	"value.Char":             reflect.TypeOf(value.Char(0)),
	"value.Period":           reflect.TypeOf(value.Period{}),
	"value.MonthDay":         reflect.TypeOf(value.MonthDay{}),
	"value.YearMonth":        reflect.TypeOf(value.YearMonth{}),
	"value.Year":             reflect.TypeOf(value.Year(0)),
}
