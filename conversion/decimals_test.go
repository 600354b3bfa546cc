package conversion

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/viant/convx/option"
	"github.com/viant/convx/value"
	"github.com/viant/convx/xtype"
)

func TestDecimals(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 70)
	id := uuid.MustParse("00000000-0000-0000-0000-0000000000ff")
	runConversionCases(t, []conversionCase{
		{description: "to time", input: decimal.RequireFromString("1.5"), target: timeType, expect: time.Unix(1, 500000000)},
		{description: "negative to time", input: decimal.RequireFromString("-1.5"), target: timeType, expect: time.Unix(-2, 500000000)},
		{description: "to duration", input: decimal.RequireFromString("1.5"), target: durationType, expect: 1500 * time.Millisecond},
		{description: "duration overflow", input: decimal.RequireFromString("1e20"), target: durationType, hasError: true},
		{description: "to big int", input: decimal.RequireFromString("123.9"), target: bigIntType, expect: big.NewInt(123)},
		{description: "to string", input: decimal.New(15000, -4), target: stringType, expect: "1.5"},
		{description: "to plain string", input: decimal.New(12, 3), target: stringType, expect: "12000"},
		{description: "to uuid", input: decimal.NewFromInt(255), target: uuidType, expect: id},
		{description: "negative to uuid", input: decimal.NewFromInt(-1), target: uuidType, hasError: true},
		{description: "to int", input: decimal.RequireFromString("12.9"), target: xtype.For[int](), expect: 12},
		{description: "to float64", input: decimal.RequireFromString("12.25"), target: xtype.For[float64](), expect: 12.25},
		{description: "to bool", input: decimal.Zero, target: boolType, expect: false},
		{description: "big int to string", input: big.NewInt(42), target: stringType, expect: "42"},
		{description: "big int to decimal", input: big.NewInt(42), target: decimalType, expect: decimal.NewFromInt(42)},
		{description: "big int to int8", input: big.NewInt(42), target: xtype.For[int8](), expect: int8(42)},
		{description: "huge big int to int64", input: huge, target: xtype.For[int64](), hasError: true},
		{description: "huge big int to float64", input: huge, target: xtype.For[float64](), expect: 1180591620717411303424.0},
		{description: "big int to uuid", input: big.NewInt(255), target: uuidType, expect: id},
		{description: "uuid to big int", input: id, target: bigIntType, expect: big.NewInt(255)},
		{description: "uuid to string", input: id, target: stringType, expect: "00000000-0000-0000-0000-0000000000ff"},
	})
}

func TestDurations(t *testing.T) {
	runConversionCases(t, []conversionCase{
		{description: "to decimal", input: 90 * time.Second, target: decimalType, expect: decimal.NewFromInt(90)},
		{description: "to map", input: 90 * time.Second, target: mapType, expect: map[string]interface{}{"seconds": int64(90), "nanos": int64(0)}},
		{description: "negative to map", input: -1500 * time.Millisecond, target: mapType, expect: map[string]interface{}{"seconds": int64(-2), "nanos": int64(500000000)}},
		{description: "to big int", input: 90 * time.Second, target: bigIntType, expect: big.NewInt(90000000000)},
		{description: "to seconds", input: 1500 * time.Millisecond, target: xtype.For[float64](), expect: 1.5},
		{description: "to nanoseconds", input: 1500 * time.Millisecond, target: xtype.For[int64](), expect: int64(1500000000)},
		{description: "to string", input: 90 * time.Second, target: stringType, expect: "PT1M30S"},
		{description: "to time", input: 90 * time.Second, target: timeType, expect: time.Unix(90, 0)},
		{description: "from seconds", input: 1.5, target: durationType, expect: 1500 * time.Millisecond},
		{description: "from map", input: map[string]interface{}{"seconds": 1, "nanos": "500"}, target: durationType, expect: time.Second + 500},
		{description: "from invalid map", input: map[string]interface{}{"seconds": "x"}, target: durationType, hasError: true},
		{description: "from map at max duration", input: map[string]interface{}{"seconds": int64(9223372036), "nanos": int64(854775807)},
			target: durationType, expect: time.Duration(math.MaxInt64)},
		{description: "from map with overflowing nanos", input: map[string]interface{}{"seconds": int64(9223372036), "nanos": int64(854775808)},
			target: durationType, hasError: true},
		{description: "from map with overflowing negative nanos", input: map[string]interface{}{"seconds": int64(-9223372036), "nanos": int64(-854775809)},
			target: durationType, hasError: true},
	})
}

func TestDurationToDecimal_Scale(t *testing.T) {
	converter := newTestConverter()
	actual, err := converter.Convert(90*time.Second, decimalType)
	if !assert.Nil(t, err) {
		return
	}
	converted := actual.(decimal.Decimal)
	assert.EqualValues(t, -9, converted.Exponent())
	assert.Equal(t, "90.000000000", converted.StringFixed(9))
}

func TestTimes(t *testing.T) {
	ts := time.Date(2024, 3, 15, 23, 30, 0, 250000000, time.UTC)
	tokyo := time.FixedZone("JST", 9*3600)
	runConversionCases(t, []conversionCase{
		{description: "to string", input: ts, target: stringType, expect: "2024-03-15T23:30:00.25Z"},
		{description: "to string with date format", input: ts, target: stringType, expect: "2024-03-15",
			options: []option.Option{option.WithDateFormat("YYYY-MM-DD")}},
		{description: "to string in zone", input: ts, target: stringType, expect: "2024-03-16T08:30:00.25+09:00",
			options: []option.Option{option.WithZone(tokyo)}},
		{description: "to epoch millis", input: ts, target: xtype.For[int64](), expect: ts.UnixMilli()},
		{description: "from epoch millis", input: ts.UnixMilli(), target: timeType, expect: ts},
		{description: "to epoch seconds", input: ts, target: decimalType, expect: decimal.New(ts.Unix(), 0).Add(decimal.New(25, -2))},
		{description: "to month day", input: ts, target: monthDayType, expect: value.MonthDay{Month: 3, Day: 15}},
		{description: "to month day in zone", input: ts, target: monthDayType, expect: value.MonthDay{Month: 3, Day: 16},
			options: []option.Option{option.WithZone(tokyo)}},
		{description: "to year month", input: ts, target: yearMonthType, expect: value.YearMonth{Year: 2024, Month: 3}},
		{description: "to year", input: ts, target: yearType, expect: value.Year(2024)},
		{description: "year to string", input: value.Year(999), target: stringType, expect: "0999"},
		{description: "period to string", input: value.Period{Days: 3}, target: stringType, expect: "P3D"},
	})
}
