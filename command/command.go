// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ COMMAND PROCESSOR
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Parking Lot Simulator
// Component: Line Protocol Front End
//
// Description:
//   Reads single-letter commands from a line stream, validates their arguments in the protocol's
//   fixed order, drives the park registry, and renders responses. Every response and every
//   rejection is a complete stdout line; rejected commands change no state at all.
//
// Commands:
//   p  create a park / list parks        r  remove a park
//   e  vehicle entry                     s  vehicle exit
//   v  vehicle history                   f  park billing
//   q  quit
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package command

import (
	"bufio"
	"io"
	"strconv"

	"parksim/park"
	"parksim/plate"
	"parksim/tariff"
	"parksim/timestamp"
	"parksim/utils"
)

// Rejection lines the processor owns. Registry rejections come from the
// park package's sentinel errors; both kinds print verbatim on stdout.
const (
	msgParkingFull  = "parking is full."
	msgInvalidPlate = "invalid licence plate."
	msgInvalidEntry = "invalid vehicle entry."
	msgInvalidExit  = "invalid vehicle exit."
	msgInvalidDate  = "invalid date."
	msgNoEntries    = "no entries found in any parking."
)

// Processor executes protocol commands against a registry. It carries the
// clock watermark: movements never run backwards in time, and the
// watermark only advances on accepted entries and exits.
type Processor struct {
	registry *park.Registry
	out      io.Writer
	last     timestamp.Timestamp
}

// NewProcessor wires a processor to its registry and output stream.
// The watermark starts at the zero instant, which predates every valid
// timestamp, so the first movement always passes the monotonicity check.
func NewProcessor(registry *park.Registry, out io.Writer) *Processor {
	return &Processor{registry: registry, out: out}
}

// Run executes commands from r line by line until the quit command or the
// end of the stream.
func (pr *Processor) Run(r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !pr.Execute(sc.Text()) {
			return
		}
	}
}

// Execute runs one command line and reports whether processing should
// continue. Blank lines and unknown commands are ignored. The command is
// the first byte of the line; the rest of the first word is discarded.
func (pr *Processor) Execute(line string) bool {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	if line == "" {
		return true
	}

	cmd := line[0]
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return true
	}
	args := tokens[1:]

	switch cmd {
	case 'q':
		return false
	case 'p':
		pr.cmdPark(args)
	case 'r':
		pr.cmdRemove(args)
	case 'e':
		pr.cmdEnter(args)
	case 's':
		pr.cmdExit(args)
	case 'v':
		pr.cmdHistory(args)
	case 'f':
		pr.cmdBilling(args)
	}
	return true
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// COMMAND HANDLERS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// cmdPark creates a park when all five creation arguments are present and
// numeric; any other shape lists the live parks in creation order.
func (pr *Processor) cmdPark(args []string) {
	if len(args) >= 5 {
		capacity, ok1 := utils.ParseDecimal(args[1])
		first, ok2 := parseRate(args[2])
		after, ok3 := parseRate(args[3])
		daily, ok4 := parseRate(args[4])
		if ok1 && ok2 && ok3 && ok4 {
			fee := tariff.Tariff{FirstHourRate: first, AfterHourRate: after, DailyCap: daily}
			if _, err := pr.registry.Add(args[0], capacity, fee); err != nil {
				pr.println(err.Error())
			}
			return
		}
	}

	pr.registry.Each(func(p *park.Park) {
		pr.println(p.Name() + " " + utils.Itoa(p.Capacity()) + " " + utils.Itoa(p.Available()))
	})
}

// cmdRemove deletes a park and acknowledges with the remaining park names
// in alphabetical order, one per line.
func (pr *Processor) cmdRemove(args []string) {
	if err := pr.registry.Remove(arg(args, 0)); err != nil {
		pr.println(err.Error())
		return
	}
	for _, name := range pr.registry.NamesSorted() {
		pr.println(name)
	}
}

// cmdEnter validates in protocol order: park, occupancy, plate, no open
// session anywhere, then the timestamp. The acknowledgement is the park
// name and the spots left.
func (pr *Processor) cmdEnter(args []string) {
	name, plateStr, ts, tsOK := movementArgs(args)

	p, ok := pr.registry.Get(name)
	if !ok {
		pr.println(name + ": " + park.ErrNoSuchPark.Error())
		return
	}
	if p.Full() {
		pr.println(name + ": " + msgParkingFull)
		return
	}
	if !plate.Valid(plateStr) {
		pr.println(plateStr + ": " + msgInvalidPlate)
		return
	}
	if pr.registry.OpenAnywhere(plateStr) {
		pr.println(plateStr + ": " + msgInvalidEntry)
		return
	}
	if !tsOK || !ts.Valid() || timestamp.Compare(ts, pr.last) < 0 {
		pr.println(msgInvalidDate)
		return
	}

	available := p.Enter(plateStr, ts)
	pr.last = ts
	pr.println(name + " " + utils.Itoa(available))
}

// cmdExit mirrors cmdEnter: park, plate, an open session in the named
// park, then the timestamp. The acknowledgement carries both instants and
// the charge. Occupancy is not checked on the way out.
func (pr *Processor) cmdExit(args []string) {
	name, plateStr, ts, tsOK := movementArgs(args)

	p, ok := pr.registry.Get(name)
	if !ok {
		pr.println(name + ": " + park.ErrNoSuchPark.Error())
		return
	}
	if !plate.Valid(plateStr) {
		pr.println(plateStr + ": " + msgInvalidPlate)
		return
	}
	if !p.HasOpen(plateStr) {
		pr.println(plateStr + ": " + msgInvalidExit)
		return
	}
	if !tsOK || !ts.Valid() || timestamp.Compare(ts, pr.last) < 0 {
		pr.println(msgInvalidDate)
		return
	}

	entry, cost, _ := p.Exit(plateStr, ts)
	pr.last = ts
	pr.println(plateStr + " " + entry.String() + " " + ts.String() + " " + utils.Ftoa2(cost))
}

// cmdHistory prints every stay of a plate, parks in alphabetical order and
// entries chronological within a park. Open stays print without an exit.
func (pr *Processor) cmdHistory(args []string) {
	plateStr := arg(args, 0)
	if !plate.Valid(plateStr) {
		pr.println(plateStr + ": " + msgInvalidPlate)
		return
	}

	stays := pr.registry.History(plateStr)
	if len(stays) == 0 {
		pr.println(plateStr + ": " + msgNoEntries)
		return
	}
	for _, s := range stays {
		if s.Closed {
			pr.println(s.Park + " " + s.Entry.String() + " " + s.Exit.String())
		} else {
			pr.println(s.Park + " " + s.Entry.String())
		}
	}
}

// cmdBilling prints a park's revenue: per exit date without a date
// argument, per vehicle for one date with it. Billing is read only and
// never advances the watermark, but a dated query may not look into the
// future.
func (pr *Processor) cmdBilling(args []string) {
	name := arg(args, 0)
	p, ok := pr.registry.Get(name)
	if !ok {
		pr.println(name + ": " + park.ErrNoSuchPark.Error())
		return
	}

	if len(args) >= 2 {
		date, dateOK := timestamp.ParseDate(arg(args, 1))
		if !dateOK || !date.Valid() || timestamp.Compare(date, pr.last) > 0 {
			pr.println(msgInvalidDate)
			return
		}
		for _, line := range p.DailyBills(date) {
			pr.println(line.Plate + " " + line.Exit.ClockString() + " " + utils.Ftoa2(line.Amount))
		}
		return
	}

	for _, day := range p.FullBills() {
		pr.println(day.Date.DateString() + " " + utils.Ftoa2(day.Amount))
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// HELPERS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func (pr *Processor) println(s string) {
	_, _ = io.WriteString(pr.out, s+"\n")
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// movementArgs reads the common argument shape of entries and exits:
// park name, plate, date, clock. A date or clock that does not scan
// reports !ok and leaves the timestamp zero, which later fails Valid.
func movementArgs(args []string) (name, plateStr string, ts timestamp.Timestamp, ok bool) {
	name = arg(args, 0)
	plateStr = arg(args, 1)

	ts, ok = timestamp.ParseDate(arg(args, 2))
	if !ok {
		return name, plateStr, timestamp.Timestamp{}, false
	}
	hour, minute, clockOK := timestamp.ParseClock(arg(args, 3))
	if !clockOK {
		return name, plateStr, timestamp.Timestamp{}, false
	}
	ts.Hour, ts.Minute = hour, minute
	return name, plateStr, ts, true
}

// parseRate scans a tariff rate token. Rates are the one place the
// protocol carries floats.
func parseRate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}
