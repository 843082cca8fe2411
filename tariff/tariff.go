// Package tariff prices parking stays. A stay is charged per started
// quarter hour: the first four quarters of each day at the first-hour rate,
// later quarters at the higher after-hour rate, with every day's subtotal
// clamped to the daily cap. Complete 24-hour periods bill the cap directly.
package tariff

import (
	"parksim/constants"
	"parksim/timestamp"
)

// Tariff is a park's pricing scheme. Rates apply per started quarter hour.
type Tariff struct {
	FirstHourRate float64 // quarters 1..4 of the charged remainder
	AfterHourRate float64 // every later quarter
	DailyCap      float64 // price of a complete day, ceiling for a partial one
}

// Valid reports whether the scheme is chargeable: the first-hour rate is
// strictly positive, the after-hour rate strictly higher, and the daily cap
// strictly above both.
func (t Tariff) Valid() bool {
	return t.FirstHourRate > 0 &&
		t.FirstHourRate < t.AfterHourRate &&
		t.AfterHourRate < t.DailyCap
}

// Cost prices the stay from entry to exit. Both bounds must be valid
// instants with exit not before entry; a zero-length stay costs nothing.
func (t Tariff) Cost(entry, exit timestamp.Timestamp) float64 {
	minutes := exit.Sub(entry)

	days := 0
	for minutes >= constants.MinutesInDay {
		days++
		minutes -= constants.MinutesInDay
	}

	// Remainder of the stay, charged per started quarter.
	quarters := 0
	subtotal := 0.0
	for minutes > 0 && quarters < constants.FirstHourQuarters {
		quarters++
		minutes -= constants.QuarterMinutes
		subtotal += t.FirstHourRate
	}
	for minutes > 0 {
		minutes -= constants.QuarterMinutes
		subtotal += t.AfterHourRate
	}
	if subtotal > t.DailyCap {
		subtotal = t.DailyCap
	}

	return float64(days)*t.DailyCap + subtotal
}
