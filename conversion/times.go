package conversion

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/viant/convx/option"
	"github.com/viant/convx/registry"
	"github.com/viant/convx/value"
)

func registerTimes(r registry.Registrar) {
	r.Register(timeType, stringType, timeToString)
	r.Register(timeType, int64Type, timeToEpochMillis)
	r.Register(timeType, decimalType, timeToEpochSeconds)
	r.Register(timeType, monthDayType, timeToMonthDay)
	r.Register(timeType, yearMonthType, timeToYearMonth)
	r.Register(timeType, yearType, timeToYear)
	r.Register(int64Type, timeType, epochMillisToTime)
}

// timeToString formats time in options zone with the options layout, RFC3339 with nanoseconds otherwise
func timeToString(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	ts := v.(time.Time)
	layout := opts.TimeLayout()
	if layout == "" {
		layout = time.RFC3339Nano
	}
	return ts.In(opts.Zone()).Format(layout), nil
}

func timeToEpochMillis(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return v.(time.Time).UnixMilli(), nil
}

func epochMillisToTime(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	return time.UnixMilli(v.(int64)).In(opts.Zone()), nil
}

func timeToEpochSeconds(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	ts := v.(time.Time)
	return decimal.New(ts.Unix(), 0).Add(decimal.New(int64(ts.Nanosecond()), -9)), nil
}

func timeToMonthDay(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	ts := v.(time.Time).In(opts.Zone())
	return value.MonthDay{Month: ts.Month(), Day: ts.Day()}, nil
}

func timeToYearMonth(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	ts := v.(time.Time).In(opts.Zone())
	return value.YearMonth{Year: ts.Year(), Month: ts.Month()}, nil
}

func timeToYear(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	return value.Year(v.(time.Time).In(opts.Zone()).Year()), nil
}
