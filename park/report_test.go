package park

import (
	"testing"

	"parksim/timestamp"
)

// -----------------------------------------------------------------------------
// ░░ Vehicle History ░░
// -----------------------------------------------------------------------------

func TestHistoryAcrossParks(t *testing.T) {
	r := newTestRegistry()
	baixa, _ := r.Add("baixa", 10, testFee)
	norte, _ := r.Add("norte", 10, testFee)
	plate := "AA-00-BB"

	// Two closed stays on day one, then an open stay on day two.
	baixa.Enter(plate, at(1, 10, 0))
	baixa.Exit(plate, at(1, 11, 30))
	norte.Enter(plate, at(1, 12, 0))
	norte.Exit(plate, at(1, 13, 0))
	baixa.Enter(plate, at(2, 9, 0))

	stays := r.History(plate)
	if len(stays) != 3 {
		t.Fatalf("History returned %d stays, want 3", len(stays))
	}

	// Park name first, entry instant second.
	if stays[0].Park != "baixa" || stays[0].Entry != at(1, 10, 0) {
		t.Fatalf("stay 0 = %+v", stays[0])
	}
	if stays[1].Park != "baixa" || stays[1].Entry != at(2, 9, 0) {
		t.Fatalf("stay 1 = %+v", stays[1])
	}
	if stays[2].Park != "norte" || stays[2].Entry != at(1, 12, 0) {
		t.Fatalf("stay 2 = %+v", stays[2])
	}

	if !stays[0].Closed || stays[0].Exit != at(1, 11, 30) {
		t.Fatalf("stay 0 should be closed at 11:30: %+v", stays[0])
	}
	if stays[1].Closed {
		t.Fatalf("stay 1 should be open: %+v", stays[1])
	}
	if !stays[2].Closed {
		t.Fatalf("stay 2 should be closed: %+v", stays[2])
	}
}

func TestHistoryUnknownPlate(t *testing.T) {
	r := newTestRegistry()
	if _, err := r.Add("baixa", 10, testFee); err != nil {
		t.Fatal(err)
	}
	if stays := r.History("ZZ-99-ZZ"); stays != nil {
		t.Fatalf("History for unknown plate = %v, want nil", stays)
	}
}

func TestHistorySurvivesParkRemoval(t *testing.T) {
	r := newTestRegistry()
	baixa, _ := r.Add("baixa", 10, testFee)
	norte, _ := r.Add("norte", 10, testFee)
	plate := "AA-00-BB"

	baixa.Enter(plate, at(1, 10, 0))
	baixa.Exit(plate, at(1, 11, 0))
	norte.Enter(plate, at(1, 12, 0))
	norte.Exit(plate, at(1, 13, 0))

	if err := r.Remove("baixa"); err != nil {
		t.Fatal(err)
	}

	// The removed park's records are gone with its table.
	stays := r.History(plate)
	if len(stays) != 1 || stays[0].Park != "norte" {
		t.Fatalf("History after removal = %+v, want the norte stay only", stays)
	}
}

// -----------------------------------------------------------------------------
// ░░ Dated Billing ░░
// -----------------------------------------------------------------------------

func TestDailyBills(t *testing.T) {
	r := newTestRegistry()
	p, _ := r.Add("central", 10, testFee)

	// Day one: two closed stays, exits at 10:15 and 11:30.
	p.Enter("CC-11-DD", at(1, 9, 0))
	p.Exit("CC-11-DD", at(1, 10, 15)) // 75 min → 1.50
	p.Enter("AA-00-BB", at(1, 10, 0))
	p.Exit("AA-00-BB", at(1, 11, 30)) // 90 min → 2.00

	// Day two exit and a still-open stay must not appear.
	p.Enter("EE-22-FF", at(1, 23, 0))
	p.Exit("EE-22-FF", at(2, 0, 30))
	p.Enter("GG-33-HH", at(2, 8, 0))

	lines := p.DailyBills(at(1, 0, 0))
	if len(lines) != 2 {
		t.Fatalf("DailyBills returned %d lines, want 2", len(lines))
	}
	if lines[0].Plate != "CC-11-DD" || lines[0].Amount != 1.50 {
		t.Fatalf("line 0 = %+v", lines[0])
	}
	if lines[0].Exit.ClockString() != "10:15" {
		t.Fatalf("line 0 exit clock = %q", lines[0].Exit.ClockString())
	}
	if lines[1].Plate != "AA-00-BB" || lines[1].Amount != 2.00 {
		t.Fatalf("line 1 = %+v", lines[1])
	}

	if empty := p.DailyBills(at(3, 0, 0)); len(empty) != 0 {
		t.Fatalf("billing for a quiet date = %+v, want empty", empty)
	}
}

// -----------------------------------------------------------------------------
// ░░ Full Billing Fold ░░
// -----------------------------------------------------------------------------

func TestFullBills(t *testing.T) {
	r := newTestRegistry()
	p, _ := r.Add("central", 10, testFee)

	// Two exits on day one.
	p.Enter("CC-11-DD", at(1, 9, 0))
	p.Exit("CC-11-DD", at(1, 10, 15)) // 1.50
	p.Enter("AA-00-BB", at(1, 10, 0))
	p.Exit("AA-00-BB", at(1, 11, 30)) // 2.00

	// One exit on day three: a stay of exactly 24 hours bills one cap.
	p.Enter("EE-22-FF", at(2, 8, 0))
	p.Exit("EE-22-FF", at(3, 8, 0)) // 8.00

	// Open stay contributes nothing.
	p.Enter("GG-33-HH", at(3, 9, 0))

	days := p.FullBills()
	if len(days) != 2 {
		t.Fatalf("FullBills returned %d days, want 2", len(days))
	}
	if timestamp.CompareDate(days[0].Date, at(1, 0, 0)) != 0 || days[0].Amount != 3.50 {
		t.Fatalf("day 0 = %s %.2f, want 01-03-2024 3.50", days[0].Date.DateString(), days[0].Amount)
	}
	if timestamp.CompareDate(days[1].Date, at(3, 0, 0)) != 0 || days[1].Amount != 8.00 {
		t.Fatalf("day 1 = %s %.2f, want 03-03-2024 8.00", days[1].Date.DateString(), days[1].Amount)
	}
}

func TestFullBillsEmptyPark(t *testing.T) {
	r := newTestRegistry()
	p, _ := r.Add("central", 10, testFee)
	if days := p.FullBills(); len(days) != 0 {
		t.Fatalf("FullBills on an empty park = %+v", days)
	}
}
