package conversion

import (
	"fmt"
	"math"
	"math/big"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/viant/convx/format/iso"
	ftime "github.com/viant/convx/format/time"
	"github.com/viant/convx/option"
	"github.com/viant/convx/registry"
	"github.com/viant/convx/value"
	"github.com/viant/convx/xtype"
	"golang.org/x/text/language"
)

var (
	monthDayExpr  = regexp.MustCompile(`^(\d{1,2}).(\d{1,2})$`)
	allDigitsExpr = regexp.MustCompile(`^\d+$`)
)

func registerStrings(r registry.Registrar) {
	for _, target := range signedTypes {
		r.Register(stringType, target, stringToSigned(target))
	}
	for _, target := range unsignedTypes {
		r.Register(stringType, target, stringToUnsigned(target))
	}
	for _, target := range floatTypes {
		r.Register(stringType, target, stringToFloat(target))
	}
	r.Register(stringType, boolType, stringToBool)
	r.Register(stringType, charType, stringToChar)
	r.Register(stringType, bigIntType, stringToBigInt)
	r.Register(stringType, decimalType, stringToDecimal)
	r.Register(stringType, urlType, stringToURL)
	r.Register(stringType, uuidType, stringToUUID)
	r.Register(stringType, durationType, stringToDuration)
	r.Register(stringType, periodType, stringToPeriod)
	r.Register(stringType, monthDayType, stringToMonthDay)
	r.Register(stringType, yearMonthType, stringToYearMonth)
	r.Register(stringType, yearType, stringToYear)
	r.Register(stringType, timeType, stringToTime)
	r.Register(stringType, locationType, stringToLocation)
	r.Register(stringType, localeType, stringToLocale)
	r.Register(stringType, typeType, stringToType)
	r.Register(stringType, bytesType, stringToBytes)
	r.Register(stringType, runesType, stringToRunes)
	r.Register(bytesType, stringType, bytesToString)
	r.Register(runesType, stringType, runesToString)
}

func stringToSigned(target xtype.ID) registry.Func {
	bits := target.Type().Bits()
	low := int64(math.MinInt64) >> (64 - bits)
	high := int64(math.MaxInt64) >> (64 - bits)
	return func(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
		text := v.(string)
		if text == "" {
			return as(int64(0), target), nil
		}
		if parsed, err := strconv.ParseInt(text, 10, bits); err == nil {
			return as(parsed, target), nil
		}
		truncated, err := decimal.NewFromString(text)
		if err == nil {
			truncated = truncated.Truncate(0)
			if !truncated.LessThan(decimal.NewFromInt(low)) && !truncated.GreaterThan(decimal.NewFromInt(high)) {
				return as(truncated.IntPart(), target), nil
			}
		}
		return nil, fmt.Errorf("value '%s' not parseable as %v value or outside %v to %v", text, target.Kind(), low, high)
	}
}

func stringToUnsigned(target xtype.ID) registry.Func {
	bits := target.Type().Bits()
	high := uint64(math.MaxUint64) >> (64 - bits)
	return func(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
		text := v.(string)
		if text == "" {
			return as(uint64(0), target), nil
		}
		if parsed, err := strconv.ParseUint(text, 10, bits); err == nil {
			return as(parsed, target), nil
		}
		truncated, err := decimal.NewFromString(text)
		if err == nil {
			truncated = truncated.Truncate(0)
			if !truncated.IsNegative() && !truncated.GreaterThan(decimal.NewFromUint64(high)) {
				return as(truncated.BigInt().Uint64(), target), nil
			}
		}
		return nil, fmt.Errorf("value '%s' not parseable as %v value or outside 0 to %v", text, target.Kind(), high)
	}
}

func stringToFloat(target xtype.ID) registry.Func {
	bits := target.Type().Bits()
	return func(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
		text := v.(string)
		if text == "" {
			return as(float64(0), target), nil
		}
		parsed, err := strconv.ParseFloat(text, bits)
		if err != nil {
			return nil, fmt.Errorf("value '%s' not parseable as %v value: %w", text, target.Kind(), err)
		}
		return as(parsed, target), nil
	}
}

func stringToBool(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	switch text := v.(string); text {
	case "true":
		return true, nil
	case "false", "":
		return false, nil
	default:
		return strings.EqualFold(text, "true") || strings.EqualFold(text, "t") || text == "1" ||
			strings.EqualFold(text, "y") || strings.EqualFold(text, `"true"`), nil
	}
}

func stringToChar(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	text := v.(string)
	if text == "" {
		return value.Char(0), nil
	}
	if utf8.RuneCountInString(text) == 1 {
		r, _ := utf8.DecodeRuneInString(text)
		return value.Char(r), nil
	}
	if allDigitsExpr.MatchString(text) {
		code, err := strconv.ParseInt(text, 10, 32)
		if err != nil || code > utf8.MaxRune {
			return nil, fmt.Errorf("unable to parse '%s' as a character", text)
		}
		return value.Char(code), nil
	}
	if !strings.HasPrefix(text, `\u`) || len(text) != 6 {
		return nil, fmt.Errorf("unable to parse '%s' as a character, invalid unicode escape sequence", text)
	}
	code, err := strconv.ParseUint(text[2:], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("unable to parse '%s' as a character: %w", text, err)
	}
	return value.Char(code), nil
}

func stringToBigInt(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	text := v.(string)
	if text == "" {
		return new(big.Int), nil
	}
	parsed, err := decimal.NewFromString(text)
	if err != nil {
		return nil, fmt.Errorf("value '%s' not parseable as a big integer value: %w", text, err)
	}
	return parsed.BigInt(), nil
}

func stringToDecimal(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	text := v.(string)
	if text == "" {
		return decimal.Zero, nil
	}
	parsed, err := decimal.NewFromString(text)
	if err != nil {
		return nil, fmt.Errorf("value '%s' not parseable as a decimal value: %w", text, err)
	}
	return parsed, nil
}

func stringToURL(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	text := v.(string)
	if text == "" {
		return (*url.URL)(nil), nil
	}
	parsed, err := url.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot convert string '%s' to URL: %w", text, err)
	}
	return parsed, nil
}

func stringToUUID(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	text := v.(string)
	parsed, err := uuid.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to convert '%s' to UUID: %w", text, err)
	}
	return parsed, nil
}

func stringToDuration(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	text := strings.TrimSpace(v.(string))
	parsed, err := iso.ParseDuration(text)
	if err == nil {
		return parsed, nil
	}
	if native, nativeErr := time.ParseDuration(text); nativeErr == nil {
		return native, nil
	}
	return nil, fmt.Errorf("unable to parse '%s' as a duration: %w", text, err)
}

func stringToPeriod(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	parsed, err := iso.ParsePeriod(v.(string))
	if err != nil {
		return nil, fmt.Errorf("unable to parse '%s' as a period: %w", v, err)
	}
	return parsed, nil
}

func stringToMonthDay(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	text := strings.TrimSpace(v.(string))
	if strings.HasPrefix(text, "--") {
		if ts, err := time.Parse("--01-02", text); err == nil {
			return value.NewMonthDay(int(ts.Month()), ts.Day())
		}
	}
	if matched := monthDayExpr.FindStringSubmatch(text); matched != nil {
		month, _ := strconv.Atoi(matched[1])
		day, _ := strconv.Atoi(matched[2])
		return value.NewMonthDay(month, day)
	}
	ts, err := ftime.Parse(opts.TimeLayout(), text, opts.Zone())
	if err != nil {
		return nil, fmt.Errorf("unable to extract month-day from string: %s: %w", text, err)
	}
	return value.NewMonthDay(int(ts.Month()), ts.Day())
}

func stringToYearMonth(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	text := strings.TrimSpace(v.(string))
	if ts, err := time.Parse("2006-01", text); err == nil {
		return value.NewYearMonth(ts.Year(), int(ts.Month()))
	}
	ts, err := ftime.Parse(opts.TimeLayout(), text, opts.Zone())
	if err != nil {
		return nil, fmt.Errorf("unable to extract year-month from string: %s: %w", text, err)
	}
	return value.NewYearMonth(ts.Year(), int(ts.Month()))
}

func stringToYear(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	text := strings.TrimSpace(v.(string))
	if year, err := strconv.Atoi(text); err == nil {
		return value.Year(year), nil
	}
	ts, err := ftime.Parse(opts.TimeLayout(), text, opts.Zone())
	if err != nil {
		return nil, fmt.Errorf("unable to parse 4-digit year from '%s': %w", text, err)
	}
	return value.Year(ts.Year()), nil
}

func stringToTime(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	text := strings.TrimSpace(v.(string))
	if text == "" {
		return time.Time{}, nil
	}
	return ftime.Parse(opts.TimeLayout(), text, opts.Zone())
}

func stringToLocation(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	text := strings.TrimSpace(v.(string))
	if text == "" {
		return (*time.Location)(nil), nil
	}
	if loc, err := time.LoadLocation(text); err == nil {
		return loc, nil
	}
	if loc, ok := offsetLocation(text); ok {
		return loc, nil
	}
	return nil, fmt.Errorf("unknown time-zone ID: '%s'", text)
}

// offsetLocation parses Z, +hh, +hh:mm and +hhmm offsets, optionally prefixed with UTC or GMT
func offsetLocation(text string) (*time.Location, bool) {
	offset := strings.TrimPrefix(strings.TrimPrefix(text, "UTC"), "GMT")
	if offset == "Z" || offset == "" {
		return time.UTC, true
	}
	for _, layout := range []string{"-07:00", "-0700", "-07"} {
		if ts, err := time.Parse(layout, offset); err == nil {
			_, seconds := ts.Zone()
			return time.FixedZone(text, seconds), true
		}
	}
	return nil, false
}

func stringToLocale(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	text := strings.TrimSpace(v.(string))
	if text == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse '%s' as a locale: %w", text, err)
	}
	return tag, nil
}

func stringToType(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	name := strings.TrimSpace(v.(string))
	if rType, ok := opts.LoadType(name); ok {
		return rType, nil
	}
	if rType, ok := builtinTypes[name]; ok {
		return rType, nil
	}
	return nil, fmt.Errorf("cannot convert string '%s' to type, type not found", name)
}

func stringToBytes(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	text := v.(string)
	if text == "" {
		return []byte{}, nil
	}
	enc, err := opts.Encoding()
	if err != nil {
		return nil, err
	}
	encoded, err := enc.NewEncoder().String(text)
	if err != nil {
		return nil, fmt.Errorf("unable to encode text with %v charset: %w", opts.Charset(), err)
	}
	return []byte(encoded), nil
}

func bytesToString(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	data := v.([]byte)
	if len(data) == 0 {
		return "", nil
	}
	enc, err := opts.Encoding()
	if err != nil {
		return nil, err
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode text with %v charset: %w", opts.Charset(), err)
	}
	return string(decoded), nil
}

func stringToRunes(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return []rune(v.(string)), nil
}

func runesToString(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return string(v.([]rune)), nil
}
