package iso

import (
	"fmt"
	"strconv"

	"github.com/viant/convx/value"
	"github.com/viant/parsly"
)

// ParsePeriod parses ISO-8601 period in PnYnMnWnD form, weeks are folded into days
func ParsePeriod(text string) (value.Period, error) {
	negative, body, err := designated(text)
	if err != nil {
		return value.Period{}, fmt.Errorf("invalid period %q: %w", text, err)
	}
	cursor := parsly.NewCursor("", []byte(body), 0)
	components, err := matchComponents(cursor, yearMatcher, monthMatcher, weekMatcher, dayMatcher)
	if err != nil {
		return value.Period{}, fmt.Errorf("invalid period %q: %w", text, err)
	}
	if len(components) == 0 {
		return value.Period{}, fmt.Errorf("invalid period %q: missing components", text)
	}
	result := value.Period{}
	for _, item := range components {
		amount, err := strconv.Atoi(item.value)
		if err != nil {
			return value.Period{}, fmt.Errorf("invalid period %q: %w", text, err)
		}
		switch item.code {
		case yearToken:
			result.Years = amount
		case monthToken:
			result.Months = amount
		case weekToken:
			result.Days += amount * 7
		case dayToken:
			result.Days += amount
		}
	}
	if negative {
		result = value.Period{Years: -result.Years, Months: -result.Months, Days: -result.Days}
	}
	return result, nil
}
