// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ PLATE-KEYED LOG TABLE
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Parking Lot Simulator
// Component: Chained Hash Table Implementation
//
// Description:
//   Hash table mapping licence plates to chains of movement records. Buckets hold handles into
//   the record arena; collisions chain through the records' Next links. Chains build in insertion
//   order and reverse on rehash, so traversal is deterministic but not chronological; report paths
//   sort what they collect. Capacity is always prime and grows once the insert count crosses the
//   load factor.
//
// Design Principles:
//   - djb2 over plate bytes, dash separators excluded
//   - Tail append preserves chronological order inside every bucket
//   - Growth rehashes handles only; records never move
//   - Single-threaded by contract, no locks anywhere
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package logidx

import (
	"parksim/constants"
	"parksim/timestamp"
)

// djb2Seed is the classic djb2 starting value.
const djb2Seed = 5381

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// HASH FUNCTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// PlateHash folds a plate into a bucket index for the given capacity.
//
// ALGORITHM:
//
//	djb2: hash = hash*33 + c for every byte of the plate except the dash
//	separators, starting from 5381, in 32-bit wrapping arithmetic. The
//	dashes are skipped so the visual grouping of a plate cannot influence
//	its bucket. The final value is reduced modulo capacity.
//
// The capacity must be non-zero; tables guarantee that from construction.
func PlateHash(plateStr string, capacity uint32) uint32 {
	hash := uint32(djb2Seed)
	for i := 0; i < len(plateStr); i++ {
		c := plateStr[i]
		if c == '-' {
			continue
		}
		hash = (hash << 5) + hash + uint32(c)
	}
	return hash % capacity
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// TABLE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Options tunes a table at construction. The zero value selects the
// standard geometry: 53 buckets, 0.75 load factor, growth checked on the
// tail-append path only.
type Options struct {
	// InitialCapacity is the starting bucket count. It should be prime;
	// zero or negative selects constants.InitialTableSize.
	InitialCapacity int

	// LoadFactor is the count/capacity ratio that triggers growth once
	// exceeded. Zero or negative selects constants.LoadFactorThreshold.
	LoadFactor float64

	// GrowOnHeadInsert extends the load factor check to inserts that open
	// a fresh bucket. Historically only chain-extending inserts checked,
	// so a table fed exclusively head inserts never grew; enabling this
	// closes that gap at the price of different growth points.
	GrowOnHeadInsert bool
}

// Table is the plate-keyed log index of one park. It owns every record
// ever inserted; records are never removed, sessions just close in place.
//
// INVARIANTS:
//
//	count is the monotonic number of inserts and equals the arena length.
//	Every record sits in the bucket its plate hashes to at the current
//	capacity.
//	len(buckets) is prime and never zero.
type Table struct {
	arena   Arena
	buckets []Ref
	count   int
	opts    Options
}

// NewTable builds an empty table. Out-of-range options fall back to the
// standard geometry so a zero Options is always safe.
func NewTable(opts Options) *Table {
	if opts.InitialCapacity <= 0 {
		opts.InitialCapacity = constants.InitialTableSize
	}
	if opts.LoadFactor <= 0 {
		opts.LoadFactor = constants.LoadFactorThreshold
	}
	buckets := make([]Ref, opts.InitialCapacity)
	for i := range buckets {
		buckets[i] = None
	}
	return &Table{
		arena:   Arena{recs: make([]Log, 0, opts.InitialCapacity)},
		buckets: buckets,
		opts:    opts,
	}
}

// Capacity returns the current bucket count.
func (t *Table) Capacity() int { return len(t.buckets) }

// Len returns how many records the table holds.
func (t *Table) Len() int { return t.count }

// At resolves a handle previously returned by Insert or OpenSession.
func (t *Table) At(ref Ref) *Log { return t.arena.At(ref) }

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CORE OPERATIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Insert stores rec and returns its handle. The record is appended at the
// tail of its bucket chain so chains stay in insertion order.
//
// GROWTH:
//
//	The load factor is checked after appending to an occupied bucket.
//	Inserts that open a fresh bucket skip the check unless
//	Options.GrowOnHeadInsert is set. Growth is deferred, never missed:
//	an over-full table grows on the next chained insert.
func (t *Table) Insert(rec Log) Ref {
	t.count++
	ref := t.arena.Alloc(rec)
	idx := PlateHash(rec.Plate, uint32(len(t.buckets)))

	if t.buckets[idx] == None {
		t.buckets[idx] = ref
		if t.opts.GrowOnHeadInsert && t.overloaded() {
			t.grow()
		}
		return ref
	}

	cur := t.buckets[idx]
	for t.arena.At(cur).Next != None {
		cur = t.arena.At(cur).Next
	}
	t.arena.At(cur).Next = ref
	if t.overloaded() {
		t.grow()
	}
	return ref
}

// OpenSession finds the open record for a plate, if any. At most one open
// session per plate exists across all tables; entry validation enforces
// that before inserting.
func (t *Table) OpenSession(plateStr string) (Ref, bool) {
	idx := PlateHash(plateStr, uint32(len(t.buckets)))
	for ref := t.buckets[idx]; ref != None; ref = t.arena.At(ref).Next {
		rec := t.arena.At(ref)
		if rec.Open() && rec.Plate == plateStr {
			return ref, true
		}
	}
	return None, false
}

// CloseSession stamps the exit instant on an open record. The handle must
// come from OpenSession on this table.
func (t *Table) CloseSession(ref Ref, exit timestamp.Timestamp) {
	t.arena.At(ref).close(exit)
}

// EachPlateLog visits every record of one plate, in chain order. The order
// is insertion order until the first rehash reverses it; callers that need
// chronology sort what they collect. Only the plate's own bucket is
// scanned. fn must not insert into the table.
func (t *Table) EachPlateLog(plateStr string, fn func(*Log)) {
	idx := PlateHash(plateStr, uint32(len(t.buckets)))
	for ref := t.buckets[idx]; ref != None; {
		rec := t.arena.At(ref)
		ref = rec.Next
		if rec.Plate == plateStr {
			fn(rec)
		}
	}
}

// ForEach visits every record: buckets in ascending index order, each
// chain in insertion order. The traversal is deterministic for a given
// insert history, which report output relies on. fn must not insert.
func (t *Table) ForEach(fn func(Ref, *Log)) {
	for _, head := range t.buckets {
		for ref := head; ref != None; {
			rec := t.arena.At(ref)
			next := rec.Next
			fn(ref, rec)
			ref = next
		}
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// GROWTH
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func (t *Table) overloaded() bool {
	return float64(t.count)/float64(len(t.buckets)) > t.opts.LoadFactor
}

// grow moves to the next prime at least twice the current capacity and
// rehashes every record handle into the new bucket array.
//
// ALGORITHM:
//
//	New capacity is nearestPrime(2*cap + 1). Chains are walked head to
//	tail and each handle is pushed at the head of its new bucket, so a
//	chain that stays together reverses. Per-plate report order does not
//	depend on bucket order, so the reversal is observable only through
//	full-table traversal. Records themselves never move; only the bucket
//	array is replaced, and it swaps in fully built.
func (t *Table) grow() {
	newCap := nearestPrime(2*uint32(len(t.buckets)) + 1)
	next := make([]Ref, newCap)
	for i := range next {
		next[i] = None
	}
	for _, head := range t.buckets {
		ref := head
		for ref != None {
			rec := t.arena.At(ref)
			after := rec.Next
			idx := PlateHash(rec.Plate, newCap)
			rec.Next = next[idx]
			next[idx] = ref
			ref = after
		}
	}
	t.buckets = next
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PRIME HELPERS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// isPrime is trial division in 6k±1 steps, plenty for bucket counts.
func isPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := uint32(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// nearestPrime returns the smallest prime >= n.
func nearestPrime(n uint32) uint32 {
	for !isPrime(n) {
		n++
	}
	return n
}
