package logidx

import (
	"math/rand"
	"sort"
	"testing"
)

func chainOf(a *Arena, recs ...Log) Ref {
	c := NewChain()
	for _, rec := range recs {
		c.Append(a, rec)
	}
	return c.Head()
}

func collectPlates(a *Arena, head Ref) []string {
	var out []string
	for ref := head; ref != None; ref = a.At(ref).Next {
		out = append(out, a.At(ref).Plate)
	}
	return out
}

func equalStrings(x, y []string) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// -----------------------------------------------------------------------------
// ░░ Degenerate Chains ░░
// -----------------------------------------------------------------------------

func TestSortEmptyChain(t *testing.T) {
	a := NewArena(0)
	if got := SortChain(a, None, ByParkThenEntry); got != None {
		t.Fatalf("sorting an empty chain returned %d", got)
	}
}

func TestSortSingleRecord(t *testing.T) {
	a := NewArena(1)
	head := chainOf(a, Log{Plate: "AA-00-BB", Park: "central", Entry: minuteStamp(0)})
	if got := SortChain(a, head, ByParkThenEntry); got != head {
		t.Fatalf("single-record chain re-headed: %d", got)
	}
}

// -----------------------------------------------------------------------------
// ░░ Park Then Entry ░░
// -----------------------------------------------------------------------------

func TestSortByParkThenEntry(t *testing.T) {
	a := NewArena(8)
	head := chainOf(a,
		Log{Plate: "P4", Park: "norte", Entry: minuteStamp(10)},
		Log{Plate: "P1", Park: "baixa", Entry: minuteStamp(50)},
		Log{Plate: "P3", Park: "norte", Entry: minuteStamp(5)},
		Log{Plate: "P0", Park: "baixa", Entry: minuteStamp(20)},
	)

	sorted := SortChain(a, head, ByParkThenEntry)
	want := []string{"P0", "P1", "P3", "P4"} // baixa@20, baixa@50, norte@5, norte@10
	if got := collectPlates(a, sorted); !equalStrings(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

// -----------------------------------------------------------------------------
// ░░ Exit Then Park ░░
// -----------------------------------------------------------------------------

func TestSortByExitThenPark(t *testing.T) {
	a := NewArena(8)
	closed := func(plate, park string, exitMin int) Log {
		rec := Log{Plate: plate, Park: park, Entry: minuteStamp(0)}
		rec.close(minuteStamp(exitMin))
		return rec
	}
	head := chainOf(a,
		closed("P2", "baixa", 300),
		closed("P0", "alfama", 100),
		closed("P3", "norte", 300),
		closed("P1", "zona", 100),
	)

	sorted := SortChain(a, head, ByExitThenPark)
	want := []string{"P0", "P1", "P2", "P3"} // @100 alfama, @100 zona, @300 baixa, @300 norte
	if got := collectPlates(a, sorted); !equalStrings(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

// -----------------------------------------------------------------------------
// ░░ Stability on Full Key Ties ░░
// -----------------------------------------------------------------------------

func TestSortStability(t *testing.T) {
	a := NewArena(8)
	// Identical keys in both modes; only the plates differ.
	same := func(plate string) Log {
		rec := Log{Plate: plate, Park: "central", Entry: minuteStamp(30)}
		rec.close(minuteStamp(90))
		return rec
	}
	head := chainOf(a, same("P0"), same("P1"), same("P2"), same("P3"))

	for _, mode := range []SortMode{ByParkThenEntry, ByExitThenPark} {
		sorted := SortChain(a, head, mode)
		want := []string{"P0", "P1", "P2", "P3"}
		got := collectPlates(a, sorted)
		if !equalStrings(got, want) {
			t.Fatalf("mode %d broke input order on ties: %v", mode, got)
		}
		head = sorted
	}
}

// -----------------------------------------------------------------------------
// ░░ Idempotence ░░
// -----------------------------------------------------------------------------

func TestSortIdempotent(t *testing.T) {
	a := NewArena(16)
	r := rand.New(rand.NewSource(99))
	c := NewChain()
	for i := 0; i < 16; i++ {
		c.Append(a, Log{Plate: testPlate(i), Park: "central", Entry: minuteStamp(r.Intn(8))})
	}

	once := SortChain(a, c.Head(), ByParkThenEntry)
	first := collectPlates(a, once)
	twice := SortChain(a, once, ByParkThenEntry)
	if got := collectPlates(a, twice); !equalStrings(got, first) {
		t.Fatalf("re-sorting changed the order: %v vs %v", got, first)
	}
}

// -----------------------------------------------------------------------------
// ░░ Randomized Cross-Check Against sort.SliceStable ░░
// -----------------------------------------------------------------------------

func TestSortRandomAgainstReference(t *testing.T) {
	parks := []string{"alfama", "baixa", "central", "norte"}
	r := rand.New(rand.NewSource(777))

	type key struct {
		plate string
		park  string
		entry int
		exit  int
	}

	for round := 0; round < 20; round++ {
		n := 1 + r.Intn(200)
		keys := make([]key, n)
		for i := 0; i < n; i++ {
			keys[i] = key{
				plate: testPlate(i),
				park:  parks[r.Intn(len(parks))],
				entry: r.Intn(50),
				exit:  r.Intn(50),
			}
		}

		// Each mode sorts a fresh chain built in the original input order,
		// so the stability expectations line up with sort.SliceStable.
		for _, mode := range []SortMode{ByParkThenEntry, ByExitThenPark} {
			a := NewArena(n)
			c := NewChain()
			for _, k := range keys {
				rec := Log{Plate: k.plate, Park: k.park, Entry: minuteStamp(k.entry)}
				rec.close(minuteStamp(k.exit))
				c.Append(a, rec)
			}

			expected := make([]key, n)
			copy(expected, keys)
			sort.SliceStable(expected, func(i, j int) bool {
				if mode == ByExitThenPark {
					if expected[i].exit != expected[j].exit {
						return expected[i].exit < expected[j].exit
					}
					return expected[i].park < expected[j].park
				}
				if expected[i].park != expected[j].park {
					return expected[i].park < expected[j].park
				}
				return expected[i].entry < expected[j].entry
			})
			want := make([]string, n)
			for i, k := range expected {
				want[i] = k.plate
			}

			sorted := SortChain(a, c.Head(), mode)
			if got := collectPlates(a, sorted); !equalStrings(got, want) {
				t.Fatalf("round %d mode %d: order diverges from reference", round, mode)
			}
		}
	}
}
