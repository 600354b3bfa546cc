package value

import (
	"fmt"
	"time"
)

var daysInMonth = [...]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MonthDay represents a month-day combination such as --12-03
type MonthDay struct {
	Month time.Month
	Day   int
}

// NewMonthDay creates a validated month day
func NewMonthDay(month, day int) (MonthDay, error) {
	if month < 1 || month > 12 {
		return MonthDay{}, fmt.Errorf("invalid month: %v", month)
	}
	if day < 1 || day > daysInMonth[month] {
		return MonthDay{}, fmt.Errorf("invalid day %v for month %v", day, month)
	}
	return MonthDay{Month: time.Month(month), Day: day}, nil
}

func (m MonthDay) String() string {
	return fmt.Sprintf("--%02d-%02d", int(m.Month), m.Day)
}

// YearMonth represents a year-month combination such as 2024-02
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth creates a validated year month
func NewYearMonth(year, month int) (YearMonth, error) {
	if month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("invalid month: %v", month)
	}
	return YearMonth{Year: year, Month: time.Month(month)}, nil
}

func (y YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", y.Year, int(y.Month))
}

// Year represents a calendar year
type Year int

func (y Year) String() string {
	return fmt.Sprintf("%04d", int(y))
}
