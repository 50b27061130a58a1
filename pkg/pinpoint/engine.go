package pinpoint

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// None marks an index that was not determined during a run.
const None = -1

// A TestFunc evaluates the item at the passed index and returns the oracle's
// verdict for it. A returned error aborts the whole run without a report.
type TestFunc func(index int, item string) (Verdict, error)

// An Engine bisects one sequence. It assumes the sequence is arranged so that
// some prefix is good and some suffix is bad, and searches for the boundary
// between them by testing one item at a time. The assumption itself is not
// validated, a sequence violating it yields a meaningless but well-formed
// report.
type Engine struct {
	Sequence Sequence // The items to bisect, good end first

	Test TestFunc // Evaluates a single item. Called for at most O(log N) items on a skip-free run

	Log *logrus.Logger // The log to which information gets printed to
}

// searchState is the engine's mutable state for the lifetime of one run.
type searchState struct {
	lastGood int // Highest index judged good so far, or None
	firstBad int // Lowest index judged bad so far, or None

	ignored    []int        // Indices whose test was inconclusive, in first-test order
	ignoredSet map[int]bool // Membership of ignored, a revisited index is recorded only once
}

// addIgnored records an inconclusive index. An index skipped again on a later
// sweep is not recorded twice.
func (s *searchState) addIgnored(index int) {
	if s.ignoredSet[index] {
		return
	}
	s.ignoredSet[index] = true
	s.ignored = append(s.ignored, index)
}

// Run performs the bisection and synthesizes the final report.
//
// The loop is a binary search extended to tolerate inconclusive verdicts:
// when the middle item is skipped, the next item up is tried within the same
// step, and only once every item up to the current upper bound was skipped
// does the range narrow from the top. The unresolved range therefore shrinks
// on every step and the run terminates even if every single test is skipped.
func (e *Engine) Run() (*Report, error) {
	if e.Log == nil {
		// Mute logger
		e.Log = logrus.New()
		e.Log.SetOutput(io.Discard)
	}
	if len(e.Sequence) == 0 {
		return nil, fmt.Errorf("cannot bisect an empty sequence")
	}
	if e.Test == nil {
		return nil, fmt.Errorf("no test function configured")
	}

	state := searchState{lastGood: None, firstBad: None, ignoredSet: make(map[int]bool)}
	left, right := 0, len(e.Sequence)-1

	for left <= right {
		mid := (left + right) / 2
		e.Log.Debugf("Unresolved range [%d, %d], starting at middle item %d", left, right, mid)

		resolved := false
		for cursor := mid; cursor <= right && !resolved; cursor++ {
			item := e.Sequence[cursor]
			verdict, err := e.Test(cursor, item)
			if err != nil {
				return nil, errors.Join(fmt.Errorf("test of item %s at index %d failed", item, cursor), err)
			}
			e.Log.Infof("Item %d (%s) judged %s", cursor, item, verdict)

			switch verdict {
			case Good:
				state.lastGood = cursor
				left = cursor + 1
				resolved = true
			case Bad:
				state.firstBad = cursor
				right = cursor - 1
				resolved = true
			case Skip:
				state.addIgnored(cursor)
			default:
				return nil, fmt.Errorf("%d is not a valid verdict", verdict)
			}
		}

		if !resolved {
			// Every item from mid up to right was skipped, narrow from the top
			e.Log.Debugf("All items in [%d, %d] skipped, retrying below the middle", mid, right)
			right = mid - 1
		}
	}

	report := synthesizeReport(e.Sequence, state)
	e.Log.Infof("Bisection of sequence %s done. Last good index: %d, first bad index: %d, skipped items: %d",
		report.SequenceDigest, report.LastGood, report.FirstBad, len(report.Ignored))

	return report, nil
}
