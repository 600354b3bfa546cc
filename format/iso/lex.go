package iso

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	yearToken = iota + 1
	monthToken
	weekToken
	dayToken
	timeToken
	hourToken
	minuteToken
	secondToken
)

var (
	yearMatcher   = parsly.NewToken(yearToken, "nY", matcher.NewTerminator('Y', true))
	monthMatcher  = parsly.NewToken(monthToken, "nM", matcher.NewTerminator('M', true))
	weekMatcher   = parsly.NewToken(weekToken, "nW", matcher.NewTerminator('W', true))
	dayMatcher    = parsly.NewToken(dayToken, "nD", matcher.NewTerminator('D', true))
	timeMatcher   = parsly.NewToken(timeToken, "T", matcher.NewTerminator('T', true))
	hourMatcher   = parsly.NewToken(hourToken, "nH", matcher.NewTerminator('H', true))
	minuteMatcher = parsly.NewToken(minuteToken, "nM", matcher.NewTerminator('M', true))
	secondMatcher = parsly.NewToken(secondToken, "n.nS", matcher.NewTerminator('S', true))
)
