package pinpoint

// A BoundaryStatus classifies an item lying inside an unresolved boundary
// range.
type BoundaryStatus int

const (
	Untested BoundaryStatus = iota // The item was jumped over and never tested
	Ignored                        // The item was tested but the verdict was skip
)

func (s BoundaryStatus) String() string {
	if s == Ignored {
		return "ignored"
	}
	return "untested"
}

// A BoundaryItem is one item inside the open interval between the last good
// and the first bad item.
type BoundaryItem struct {
	Index int    // The index of the item in the sequence
	Item  string // The item's value

	Status BoundaryStatus // Why the item is unresolved
}

// A Report represents one finished bisection.
type Report struct {
	LastGood int // The index of the newest item judged good, or None
	FirstBad int // The index of the oldest item judged bad, or None

	LastGoodItem string // The value of the item at LastGood, empty if LastGood is None
	FirstBadItem string // The value of the item at FirstBad, empty if FirstBad is None

	Ignored []int // The indices of all skipped items, in test order

	// The items strictly between LastGood and FirstBad, each one either
	// ignored or untested. Empty when the transition is pinpointed to an
	// adjacent pair or when one of the two bounds is unknown.
	Boundary []BoundaryItem

	SequenceDigest string // Fingerprint of the bisected sequence
}

// Conclusive reports whether both a good and a bad item were found.
func (r *Report) Conclusive() bool {
	return r.LastGood != None && r.FirstBad != None
}

// Pinpointed reports whether the good to bad transition was narrowed down to
// an exact adjacent pair, with no skipped or untested items in between.
func (r *Report) Pinpointed() bool {
	return r.Conclusive() && r.FirstBad-r.LastGood == 1
}

// synthesizeReport derives the immutable report from the final search state.
func synthesizeReport(seq Sequence, state searchState) *Report {
	report := &Report{
		LastGood: state.lastGood,
		FirstBad: state.firstBad,

		Ignored: append([]int(nil), state.ignored...),

		SequenceDigest: seq.Digest(),
	}

	if state.lastGood != None {
		report.LastGoodItem = seq[state.lastGood]
	}
	if state.firstBad != None {
		report.FirstBadItem = seq[state.firstBad]
	}

	if !report.Conclusive() {
		return report
	}

	ignored := make(map[int]bool, len(state.ignored))
	for _, index := range state.ignored {
		ignored[index] = true
	}

	for i := state.lastGood + 1; i < state.firstBad; i++ {
		status := Untested
		if ignored[i] {
			status = Ignored
		}
		report.Boundary = append(report.Boundary, BoundaryItem{
			Index:  i,
			Item:   seq[i],
			Status: status,
		})
	}

	return report
}
