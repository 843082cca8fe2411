package park

import (
	"parksim/logidx"
	"parksim/timestamp"
)

// Report builders copy the records they select into a transient arena and
// sort the copies. Live tables stay untouched: their chains are bucket
// wiring, not report state, and a query must never relink them.

// Stay is one row of a vehicle history report. Exit is meaningful only
// when Closed is set.
type Stay struct {
	Park   string
	Entry  timestamp.Timestamp
	Exit   timestamp.Timestamp
	Closed bool
}

// BillLine is one vehicle's charge in a dated billing report.
type BillLine struct {
	Plate  string
	Exit   timestamp.Timestamp
	Amount float64
}

// DayTotal is one date's revenue in a full billing report. Only the date
// part of Date is significant.
type DayTotal struct {
	Date   timestamp.Timestamp
	Amount float64
}

// History collects every stay of a plate across all parks, ordered by
// park name and then by entry instant. Open stays are included with
// Closed unset. A plate no park has ever seen yields nil.
func (r *Registry) History(plateStr string) []Stay {
	arena := logidx.NewArena(16)
	chain := logidx.NewChain()
	for _, p := range r.parks {
		p.table.EachPlateLog(plateStr, func(rec *logidx.Log) {
			chain.Append(arena, *rec)
		})
	}
	if chain.Empty() {
		return nil
	}

	var stays []Stay
	head := logidx.SortChain(arena, chain.Head(), logidx.ByParkThenEntry)
	for ref := head; ref != logidx.None; ref = arena.At(ref).Next {
		rec := arena.At(ref)
		stays = append(stays, Stay{
			Park:   rec.Park,
			Entry:  rec.Entry,
			Exit:   rec.Exit,
			Closed: !rec.Open(),
		})
	}
	return stays
}

// DailyBills lists the charges collected by this park for stays that
// ended on the given date, ordered by exit instant. Open sessions never
// bill. Only the date part of date is considered.
func (p *Park) DailyBills(date timestamp.Timestamp) []BillLine {
	arena := logidx.NewArena(p.table.Len())
	chain := logidx.NewChain()
	p.table.ForEach(func(_ logidx.Ref, rec *logidx.Log) {
		if rec.Open() || timestamp.CompareDate(rec.Exit, date) != 0 {
			return
		}
		chain.Append(arena, *rec)
	})

	var lines []BillLine
	head := logidx.SortChain(arena, chain.Head(), logidx.ByExitThenPark)
	for ref := head; ref != logidx.None; ref = arena.At(ref).Next {
		rec := arena.At(ref)
		lines = append(lines, BillLine{
			Plate:  rec.Plate,
			Exit:   rec.Exit,
			Amount: p.fee.Cost(rec.Entry, rec.Exit),
		})
	}
	return lines
}

// FullBills totals this park's revenue per exit date, in date order.
// Consecutive sorted records share a date while their exits fall on the
// same day, so one running group per date is enough; the final group is
// flushed like any other.
func (p *Park) FullBills() []DayTotal {
	arena := logidx.NewArena(p.table.Len())
	chain := logidx.NewChain()
	p.table.ForEach(func(_ logidx.Ref, rec *logidx.Log) {
		if rec.Open() {
			return
		}
		chain.Append(arena, *rec)
	})

	var days []DayTotal
	head := logidx.SortChain(arena, chain.Head(), logidx.ByExitThenPark)
	for ref := head; ref != logidx.None; ref = arena.At(ref).Next {
		rec := arena.At(ref)
		amount := p.fee.Cost(rec.Entry, rec.Exit)
		if n := len(days); n > 0 && timestamp.CompareDate(days[n-1].Date, rec.Exit) == 0 {
			days[n-1].Amount += amount
		} else {
			days = append(days, DayTotal{Date: rec.Exit, Amount: amount})
		}
	}
	return days
}
