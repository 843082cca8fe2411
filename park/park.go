// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ PARK DOMAIN
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Parking Lot Simulator
// Component: Parks, Registry & Reports
//
// Description:
//   Domain layer on top of the log index. A Park couples a capacity counter and a tariff with
//   its own plate-keyed log table; the Registry tracks up to twenty parks in creation order and
//   answers the cross-park questions (open session anywhere, vehicle history). Report builders
//   copy records into transient arenas and hand them to the ordering engine, so live tables are
//   never relinked by a query.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package park

import (
	"parksim/logidx"
	"parksim/tariff"
	"parksim/timestamp"
)

// Park is one parking lot: identity, remaining capacity, pricing, and the
// full movement history of every vehicle that ever entered it.
type Park struct {
	name      string
	capacity  int
	available int
	fee       tariff.Tariff
	table     *logidx.Table
}

func newPark(name string, capacity int, fee tariff.Tariff, topts logidx.Options) *Park {
	return &Park{
		name:      name,
		capacity:  capacity,
		available: capacity,
		fee:       fee,
		table:     logidx.NewTable(topts),
	}
}

// Name returns the park's identity as given at creation.
func (p *Park) Name() string { return p.name }

// Capacity returns the total number of spots.
func (p *Park) Capacity() int { return p.capacity }

// Available returns how many spots are currently free.
func (p *Park) Available() int { return p.available }

// Fee returns the park's pricing scheme.
func (p *Park) Fee() tariff.Tariff { return p.fee }

// Full reports whether no spot is free.
func (p *Park) Full() bool { return p.available <= 0 }

// Logs returns how many movement records the park holds.
func (p *Park) Logs() int { return p.table.Len() }

// HasOpen reports whether the plate has an open session in this park.
func (p *Park) HasOpen(plateStr string) bool {
	_, ok := p.table.OpenSession(plateStr)
	return ok
}

// Enter records a vehicle entering and returns the spots left afterwards.
// The caller validates everything first: the park is not full, the plate
// is well formed, and the vehicle is not inside any park.
func (p *Park) Enter(plateStr string, ts timestamp.Timestamp) int {
	p.table.Insert(logidx.Log{Plate: plateStr, Park: p.name, Entry: ts})
	p.available--
	return p.available
}

// Exit closes the plate's open session at ts and prices the stay. It
// returns the entry instant the charge covers. ok is false when the plate
// has no open session here, in which case nothing changes.
func (p *Park) Exit(plateStr string, ts timestamp.Timestamp) (entry timestamp.Timestamp, cost float64, ok bool) {
	ref, ok := p.table.OpenSession(plateStr)
	if !ok {
		return timestamp.Timestamp{}, 0, false
	}
	p.table.CloseSession(ref, ts)
	p.available++
	rec := p.table.At(ref)
	return rec.Entry, p.fee.Cost(rec.Entry, ts), true
}
