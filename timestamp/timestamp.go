// Package timestamp implements the simulator's calendar: minute-resolution
// instants on a fixed 365-day year. There are no leap years and no time
// zones; February 29 never validates. Instants map onto a single linear
// minute scale so that durations reduce to one subtraction.
package timestamp

import (
	"parksim/constants"
	"parksim/utils"
)

// daysInMonth is indexed by Month-1. February stays at 28 in every year.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Timestamp is a calendar date plus wall-clock time. The zero value
// predates every valid instant, which makes it a safe lower bound for
// monotonicity checks.
type Timestamp struct {
	Day    int
	Month  int
	Year   int
	Hour   int
	Minute int
}

// Valid reports whether t names a real calendar instant: month 1..12, day
// within the month (February caps at 28), hour 0..23, minute 0..59. The
// year is taken as given.
func (t Timestamp) Valid() bool {
	if t.Month < 1 || t.Month > 12 {
		return false
	}
	if t.Day < 1 || t.Day > daysInMonth[t.Month-1] {
		return false
	}
	if t.Hour < 0 || t.Hour > 23 {
		return false
	}
	return t.Minute >= 0 && t.Minute <= 59
}

// Minutes maps t onto the linear minute scale. Only differences between two
// mapped values are meaningful. The receiver must be valid; out-of-range
// months are not defended against.
func (t Timestamp) Minutes() int {
	days := t.Day - 1
	for i := 0; i < t.Month-1; i++ {
		days += daysInMonth[i]
	}
	days += (t.Year - 1) * constants.DaysInYear
	return days*constants.MinutesInDay + t.Hour*constants.MinutesInHour + t.Minute
}

// Sub returns the number of minutes from u to t. Positive when t is later.
func (t Timestamp) Sub(u Timestamp) int {
	return t.Minutes() - u.Minutes()
}

// Compare orders two instants chronologically: -1 when a precedes b,
// 0 when equal, 1 when a follows b.
func Compare(a, b Timestamp) int {
	if c := cmp(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp(a.Month, b.Month); c != 0 {
		return c
	}
	if c := cmp(a.Day, b.Day); c != 0 {
		return c
	}
	if c := cmp(a.Hour, b.Hour); c != 0 {
		return c
	}
	return cmp(a.Minute, b.Minute)
}

// CompareDate orders the calendar-date components only, ignoring the clock.
func CompareDate(a, b Timestamp) int {
	if c := cmp(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp(a.Month, b.Month); c != 0 {
		return c
	}
	return cmp(a.Day, b.Day)
}

func cmp(x, y int) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// DateString renders "DD-MM-YYYY". Day and month are zero-padded, the year
// prints at its natural width.
func (t Timestamp) DateString() string {
	return utils.Pad2(t.Day) + "-" + utils.Pad2(t.Month) + "-" + utils.Itoa(t.Year)
}

// ClockString renders "HH:MM", both fields zero-padded.
func (t Timestamp) ClockString() string {
	return utils.Pad2(t.Hour) + ":" + utils.Pad2(t.Minute)
}

// String renders the full instant, date then clock, as protocol lines
// print it.
func (t Timestamp) String() string {
	return t.DateString() + " " + t.ClockString()
}

// ParseDate reads a "D-M-Y" token. Fields need not be zero-padded. The
// clock of the result is midnight. A token that does not scan returns the
// zero Timestamp and false; range checking stays with Valid.
func ParseDate(s string) (Timestamp, bool) {
	dayStr, rest, ok := splitPair(s, '-')
	if !ok {
		return Timestamp{}, false
	}
	monthStr, yearStr, ok := splitPair(rest, '-')
	if !ok {
		return Timestamp{}, false
	}
	day, ok1 := utils.ParseDecimal(dayStr)
	month, ok2 := utils.ParseDecimal(monthStr)
	year, ok3 := utils.ParseDecimal(yearStr)
	if !ok1 || !ok2 || !ok3 {
		return Timestamp{}, false
	}
	return Timestamp{Day: day, Month: month, Year: year}, true
}

// ParseClock reads an "H:M" token. Fields need not be zero-padded.
func ParseClock(s string) (hour, minute int, ok bool) {
	hourStr, minuteStr, ok := splitPair(s, ':')
	if !ok {
		return 0, 0, false
	}
	hour, ok1 := utils.ParseDecimal(hourStr)
	minute, ok2 := utils.ParseDecimal(minuteStr)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return hour, minute, true
}

func splitPair(s string, sep byte) (string, string, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}
