package date

import (
	"fmt"
	"time"
)

// CalMonth identifies a calendar month, used as a grouping key for
// monthly reports.
type CalMonth struct {
	Y int
	M time.Month
}

// MonthOf returns the calendar month the date falls in.
func MonthOf(d Date) CalMonth { return CalMonth{Y: d.Year(), M: d.Month()} }

// String formats the month as "2006-01".
func (m CalMonth) String() string { return fmt.Sprintf("%04d-%02d", m.Y, int(m.M)) }

// Before reports whether m is before x.
func (m CalMonth) Before(x CalMonth) bool {
	if m.Y != x.Y {
		return m.Y < x.Y
	}
	return m.M < x.M
}

// Next returns the month following m.
func (m CalMonth) Next() CalMonth {
	if m.M == time.December {
		return CalMonth{Y: m.Y + 1, M: time.January}
	}
	return CalMonth{Y: m.Y, M: m.M + 1}
}

// Start returns the first day of the month.
func (m CalMonth) Start() Date { return New(m.Y, m.M, 1) }

// End returns the last day of the month.
func (m CalMonth) End() Date { return New(m.Y, m.M+1, 1).Add(-1) }
