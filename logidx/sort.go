// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ CHAIN ORDERING ENGINE
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Parking Lot Simulator
// Component: Stable Merge Sort over Record Chains
//
// Description:
//   Sorts singly linked record chains without moving records: only Next links are rewritten.
//   Two fixed key orders cover every report the simulator produces. The sort is stable, so
//   records that compare equal keep their input order, which report output depends on.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package logidx

import "parksim/timestamp"

// SortMode selects the key order for SortChain. There are exactly two;
// report code picks one explicitly rather than passing comparators around.
type SortMode uint8

const (
	// ByParkThenEntry orders by park name, ties by entry instant.
	// Vehicle history reports use it.
	ByParkThenEntry SortMode = iota

	// ByExitThenPark orders by exit instant, ties by park name.
	// Billing reports use it; every record must be closed.
	ByExitThenPark
)

// SortChain sorts the chain starting at head and returns the new head.
//
// ALGORITHM:
//
//	Top-down merge sort. The chain splits at its midpoint by the
//	slow/fast walker, both halves sort recursively, and a left-biased
//	merge relinks them: on equal keys the left record wins, which is
//	what makes the sort stable. Recursion depth is logarithmic in the
//	chain length.
func SortChain(a *Arena, head Ref, mode SortMode) Ref {
	if head == None || a.At(head).Next == None {
		return head
	}
	front, back := split(a, head)
	front = SortChain(a, front, mode)
	back = SortChain(a, back, mode)
	return merge(a, front, back, mode)
}

// split cuts the chain at its midpoint. The slow walker advances one link
// for every two the fast walker takes; when the fast one falls off the
// end, the slow one stands on the last record of the front half.
func split(a *Arena, head Ref) (Ref, Ref) {
	slow := head
	fast := a.At(head).Next
	for fast != None {
		fast = a.At(fast).Next
		if fast != None {
			slow = a.At(slow).Next
			fast = a.At(fast).Next
		}
	}
	back := a.At(slow).Next
	a.At(slow).Next = None
	return head, back
}

// merge interleaves two sorted chains. Ties take from x, the half that
// came first in the input.
func merge(a *Arena, x, y Ref, mode SortMode) Ref {
	head, tail := None, None
	for x != None && y != None {
		var pick Ref
		if compare(a.At(x), a.At(y), mode) <= 0 {
			pick, x = x, a.At(x).Next
		} else {
			pick, y = y, a.At(y).Next
		}
		if head == None {
			head = pick
		} else {
			a.At(tail).Next = pick
		}
		tail = pick
	}

	rest := x
	if rest == None {
		rest = y
	}
	if head == None {
		return rest
	}
	a.At(tail).Next = rest
	return head
}

func compare(x, y *Log, mode SortMode) int {
	if mode == ByExitThenPark {
		if c := timestamp.Compare(x.Exit, y.Exit); c != 0 {
			return c
		}
		return compareNames(x.Park, y.Park)
	}
	if c := compareNames(x.Park, y.Park); c != 0 {
		return c
	}
	return timestamp.Compare(x.Entry, y.Entry)
}

// compareNames is plain byte-wise lexicographic order.
func compareNames(x, y string) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}
