package queries

import "parking-pricing/internal/domain/rate"

// capAccumulator collects per-slice amounts into ordered breakdown lines and
// a running total, enforcing the plan's daily cap incrementally: whenever a
// day's subtotal would exceed the cap, the excess is clawed back and the
// day's lines collapse into a single "Daily cap <date>" line.
type capAccumulator struct {
	capMinor  *int64
	total     int64
	lines     []accLine
	dayTotals map[string]int64
	capped    map[string]bool
}

type accLine struct {
	day    string
	label  string
	amount int64
}

func newCapAccumulator(capMinor *int64) *capAccumulator {
	return &capAccumulator{
		capMinor:  capMinor,
		dayTotals: make(map[string]int64),
		capped:    make(map[string]bool),
	}
}

func (a *capAccumulator) add(day, label string, amount int64) {
	// a collapsed day stays a single cap line; a zero amount cannot push
	// the subtotal over the cap again, so it would just leave a stray line
	if amount == 0 && a.capped[day] {
		return
	}

	merged := false
	for i := range a.lines {
		if a.lines[i].label == label {
			a.lines[i].amount += amount
			merged = true
			break
		}
	}
	if !merged {
		a.lines = append(a.lines, accLine{day: day, label: label, amount: amount})
	}
	a.total += amount

	if a.capMinor == nil {
		return
	}
	dayTotal := a.dayTotals[day] + amount
	if dayTotal > *a.capMinor {
		excess := dayTotal - *a.capMinor
		a.total -= excess
		dayTotal = *a.capMinor
		a.capped[day] = true
		a.collapseDay(day)
	}
	a.dayTotals[day] = dayTotal
}

// collapseDay replaces all of a day's lines with one cap line, kept at the
// position of the day's first line.
func (a *capAccumulator) collapseDay(day string) {
	capLine := accLine{day: day, label: "Daily cap " + day, amount: *a.capMinor}

	kept := a.lines[:0]
	replaced := false
	for _, line := range a.lines {
		if line.day != day {
			kept = append(kept, line)
			continue
		}
		if !replaced {
			kept = append(kept, capLine)
			replaced = true
		}
	}
	a.lines = kept
}

func (a *capAccumulator) result() (int64, []rate.BreakdownLine) {
	lines := make([]rate.BreakdownLine, len(a.lines))
	for i, line := range a.lines {
		lines[i] = rate.BreakdownLine{Label: line.label, AmountMinor: line.amount}
	}
	return a.total, lines
}
