package iso

import (
	"fmt"
	"strings"

	"github.com/viant/parsly"
)

type component struct {
	code  int
	value string
}

// matchComponents matches designator terminated components in the supplied order,
// each component may appear at most once
func matchComponents(cursor *parsly.Cursor, tokens ...*parsly.Token) ([]component, error) {
	var result []component
	for _, token := range tokens {
		if cursor.Pos >= len(cursor.Input) {
			break
		}
		if token.Code == timeToken {
			if cursor.Input[cursor.Pos] != 'T' {
				break
			}
		}
		match := cursor.MatchAny(token)
		if match.Code != token.Code {
			continue
		}
		text := match.Text(cursor)
		if token.Code == timeToken {
			result = append(result, component{code: timeToken})
			continue
		}
		result = append(result, component{code: token.Code, value: text[:len(text)-1]})
	}
	if cursor.Pos < len(cursor.Input) {
		return nil, fmt.Errorf("unexpected %q at position %v", string(cursor.Input[cursor.Pos:]), cursor.Pos)
	}
	return result, nil
}

// designated strips optional sign and the P designator
func designated(text string) (bool, string, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	negative := false
	switch {
	case strings.HasPrefix(text, "-"):
		negative = true
		text = text[1:]
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	}
	if !strings.HasPrefix(text, "P") || len(text) == 1 {
		return false, "", fmt.Errorf("expected P designator")
	}
	return negative, text[1:], nil
}
