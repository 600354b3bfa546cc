package time

import (
	"fmt"
	"strings"
	"time"
)

// Layouts lists layouts tried in order when no explicit layout matches
var Layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
}

// Parse parses value with supplied layout first and then with Layouts, values without zone are placed in loc
func Parse(layout, value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	if layout != "" {
		if t, err := parseWithLayout(layout, value, loc); err == nil {
			return t, nil
		}
	}
	for _, candidate := range Layouts {
		if t, err := time.ParseInLocation(candidate, value, loc); err == nil {
			return t, nil
		}
	}
	if layout != "" {
		if t, err := parsePartial(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse time %q", value)
}

func parseWithLayout(layout, value string, loc *time.Location) (time.Time, error) {
	layout, value = adjustT(layout, value)
	return time.ParseInLocation(layout, value, loc)
}

// parsePartial parses value shorter than layout with the layout prefix, a value longer than layout
// is only accepted when the remainder is blank
func parsePartial(layout, value string, loc *time.Location) (time.Time, error) {
	layout, value = adjustT(layout, value)
	if len(value) > len(layout) {
		if remainder := value[len(layout):]; strings.TrimSpace(remainder) != "" {
			return time.Time{}, fmt.Errorf("unexpected %q after %q layout", remainder, layout)
		}
		return time.ParseInLocation(layout, value[:len(layout)], loc)
	}
	return time.ParseInLocation(layout[:len(value)], value, loc)
}

// adjustT aligns the date/time separator of value and layout
func adjustT(layout, value string) (string, string) {
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	return layout, value
}
