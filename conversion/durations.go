package conversion

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viant/convx/format/iso"
	"github.com/viant/convx/option"
	"github.com/viant/convx/registry"
)

const (
	secondsKey = "seconds"
	nanosKey   = "nanos"
)

func registerDurations(r registry.Registrar) {
	r.Register(durationType, mapType, durationToMap)
	r.Register(durationType, bigIntType, durationToBigInt)
	r.Register(durationType, float64Type, durationToSeconds)
	r.Register(durationType, decimalType, durationToDecimal)
	r.Register(durationType, timeType, durationToTime)
	r.Register(durationType, stringType, durationToString)
	r.Register(float64Type, durationType, secondsToDuration)
}

// splitDuration returns floored seconds and non negative nanosecond adjustment
func splitDuration(d time.Duration) (int64, int64) {
	seconds := int64(d / time.Second)
	nanos := int64(d % time.Second)
	if nanos < 0 {
		seconds--
		nanos += int64(time.Second)
	}
	return seconds, nanos
}

func durationToMap(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	seconds, nanos := splitDuration(v.(time.Duration))
	return map[string]interface{}{secondsKey: seconds, nanosKey: nanos}, nil
}

func durationToBigInt(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return big.NewInt(int64(v.(time.Duration))), nil
}

func durationToSeconds(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return v.(time.Duration).Seconds(), nil
}

// durationToDecimal returns seconds with nanosecond scale, i.e. 90s is 90.000000000
func durationToDecimal(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return decimal.New(int64(v.(time.Duration)), -9), nil
}

func durationToTime(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	return time.Unix(0, 0).Add(v.(time.Duration)).In(opts.Zone()), nil
}

func durationToString(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return iso.FormatDuration(v.(time.Duration)), nil
}

func secondsToDuration(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	seconds := v.(float64)
	if err := finite(seconds); err != nil {
		return nil, err
	}
	return durationOf(decimal.NewFromFloat(seconds))
}
