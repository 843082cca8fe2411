// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ LOG ARENA
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Parking Lot Simulator
// Component: Movement Record Storage
//
// Description:
//   Slab storage for parking movement records. Records live in a single growable slice and are
//   addressed by stable integer handles, so links between records survive reallocation and no
//   record is ever copied or freed behind a handle's back.
//
// Design Principles:
//   - Handles instead of pointers: a Ref stays valid for the arena's lifetime
//   - Records link into singly linked chains through their Next field
//   - Session state is an explicit flag, never a sentinel timestamp
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package logidx

import "parksim/timestamp"

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// HANDLES
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Ref is a stable handle to a record in an Arena. Refs index the arena's
// slab, so they remain valid across growth and across table resizes.
type Ref int32

// None is the null handle. It terminates chains and flags empty buckets.
const None Ref = -1

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// RECORDS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Log is one parking movement: a vehicle entering a park and, once the
// session closes, leaving it again. While the session is open the Exit
// field is meaningless; Open is the only authority on session state.
type Log struct {
	Plate string // licence plate, dashes included
	Park  string // park name, shared with the owning park
	Entry timestamp.Timestamp
	Exit  timestamp.Timestamp
	Next  Ref // next record in the same chain, None at the tail

	closed bool
}

// Open reports whether the session is still in progress. A freshly inserted
// record is open; closing it stamps the exit and flips the flag.
func (l *Log) Open() bool { return !l.closed }

// close stamps the exit instant and ends the session.
func (l *Log) close(exit timestamp.Timestamp) {
	l.Exit = exit
	l.closed = true
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// ARENA
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Arena owns a slab of records. Tables embed one for their live logs;
// report builders create short-lived arenas for the copies they sort.
type Arena struct {
	recs []Log
}

// NewArena returns an arena with room for capacity records before the slab
// first grows.
func NewArena(capacity int) *Arena {
	return &Arena{recs: make([]Log, 0, capacity)}
}

// Alloc copies rec into the slab and returns its handle. The copy starts
// detached: its Next is forced to None regardless of what rec carried.
func (a *Arena) Alloc(rec Log) Ref {
	rec.Next = None
	a.recs = append(a.recs, rec)
	return Ref(len(a.recs) - 1)
}

// At resolves a handle to the record it names. The pointer is valid until
// the next Alloc; callers that allocate while holding one must re-resolve.
func (a *Arena) At(ref Ref) *Log {
	return &a.recs[ref]
}

// Len returns the number of records allocated so far.
func (a *Arena) Len() int {
	return len(a.recs)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CHAIN BUILDER
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Chain builds a singly linked list of records in append order. Report
// paths use it to collect copies before handing the head to SortChain.
// Sorting relinks the records, so the builder is spent once sorted; keep
// working with the head SortChain returns.
type Chain struct {
	head Ref
	tail Ref
}

// NewChain returns an empty chain. The zero value is not usable because
// the null handle is -1, not 0.
func NewChain() Chain {
	return Chain{head: None, tail: None}
}

// Head returns the first record of the chain, None when empty.
func (c *Chain) Head() Ref { return c.head }

// Empty reports whether nothing has been appended.
func (c *Chain) Empty() bool { return c.head == None }

// Append allocates rec in a and links it at the tail.
func (c *Chain) Append(a *Arena, rec Log) Ref {
	ref := a.Alloc(rec)
	if c.head == None {
		c.head = ref
	} else {
		a.At(c.tail).Next = ref
	}
	c.tail = ref
	return ref
}
