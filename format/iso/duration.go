package iso

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/viant/parsly"
)

const nanosPerSecond = int64(time.Second)

// ParseDuration parses ISO-8601 duration in PnDTnHnMn.nS form, i.e. PT1H30M, P2DT0.5S, -PT6H
func ParseDuration(text string) (time.Duration, error) {
	negative, body, err := designated(text)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", text, err)
	}
	cursor := parsly.NewCursor("", []byte(body), 0)
	components, err := matchComponents(cursor, dayMatcher, timeMatcher, hourMatcher, minuteMatcher, secondMatcher)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", text, err)
	}
	if len(components) == 0 || components[len(components)-1].code == timeToken {
		return 0, fmt.Errorf("invalid duration %q: missing components", text)
	}
	var total int64
	for _, item := range components {
		var nanos int64
		switch item.code {
		case timeToken:
			continue
		case dayToken:
			nanos, err = scaled(item.value, int64(24*time.Hour))
		case hourToken:
			nanos, err = scaled(item.value, int64(time.Hour))
		case minuteToken:
			nanos, err = scaled(item.value, int64(time.Minute))
		case secondToken:
			nanos, err = seconds(item.value)
		}
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", text, err)
		}
		if total, err = add(total, nanos); err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", text, err)
		}
	}
	if negative {
		total = -total
	}
	return time.Duration(total), nil
}

// FormatDuration formats duration as ISO-8601, i.e. PT8H6M12.345S
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "PT0S"
	}
	nanos := int64(d)
	hours := nanos / int64(time.Hour)
	nanos -= hours * int64(time.Hour)
	minutes := nanos / int64(time.Minute)
	nanos -= minutes * int64(time.Minute)
	secs := nanos / nanosPerSecond
	fraction := nanos - secs*nanosPerSecond

	sb := strings.Builder{}
	sb.WriteString("PT")
	if hours != 0 {
		sb.WriteString(strconv.FormatInt(hours, 10))
		sb.WriteByte('H')
	}
	if minutes != 0 {
		sb.WriteString(strconv.FormatInt(minutes, 10))
		sb.WriteByte('M')
	}
	if secs == 0 && fraction == 0 {
		return sb.String()
	}
	if secs == 0 && fraction < 0 {
		sb.WriteString("-0")
	} else {
		sb.WriteString(strconv.FormatInt(secs, 10))
	}
	if fraction != 0 {
		if fraction < 0 {
			fraction = -fraction
		}
		digits := strings.TrimRight(fmt.Sprintf("%09d", fraction), "0")
		sb.WriteByte('.')
		sb.WriteString(digits)
	}
	sb.WriteByte('S')
	return sb.String()
}

func scaled(text string, unit int64) (int64, error) {
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, err
	}
	if value > math.MaxInt64/unit || value < math.MinInt64/unit {
		return 0, fmt.Errorf("%v overflows duration", text)
	}
	return value * unit, nil
}

func seconds(text string) (int64, error) {
	whole, fraction, hasFraction := strings.Cut(text, ".")
	negative := strings.HasPrefix(whole, "-")
	nanos, err := scaled(whole, nanosPerSecond)
	if err != nil {
		return 0, err
	}
	if !hasFraction {
		return nanos, nil
	}
	if fraction == "" || len(fraction) > 9 {
		return 0, fmt.Errorf("invalid fraction of seconds: %q", text)
	}
	fractionNanos, err := strconv.ParseInt(fraction+strings.Repeat("0", 9-len(fraction)), 10, 64)
	if err != nil || fractionNanos < 0 {
		return 0, fmt.Errorf("invalid fraction of seconds: %q", text)
	}
	if negative {
		fractionNanos = -fractionNanos
	}
	return add(nanos, fractionNanos)
}

// Add returns sum of durations, it fails when the sum overflows
func Add(a, b time.Duration) (time.Duration, error) {
	sum, err := add(int64(a), int64(b))
	return time.Duration(sum), err
}

func add(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, fmt.Errorf("duration overflow")
	}
	return sum, nil
}
