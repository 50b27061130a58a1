package pinpoint

import (
	"fmt"
	"strings"
)

// A Verdict is the oracle's classification of one tested item.
type Verdict int

const (
	Good Verdict = iota // The item does not exhibit the issue
	Bad                 // The item exhibits the issue
	Skip                // The test was inconclusive, the item counts as neither good nor bad
)

// verdictSynonyms maps every accepted input spelling to its verdict.
var verdictSynonyms = map[string]Verdict{
	"good": Good, "g": Good, "pass": Good, "p": Good, "yes": Good, "y": Good, "ok": Good,
	"bad": Bad, "b": Bad, "fail": Bad, "f": Bad, "no": Bad, "n": Bad,
	"skip": Skip, "s": Skip, "ignore": Skip, "i": Skip, "unknown": Skip,
}

// ParseVerdict converts a user-supplied answer into a verdict.
// Matching is case-insensitive and surrounding whitespace is ignored.
func ParseVerdict(input string) (Verdict, error) {
	verdict, ok := verdictSynonyms[strings.ToLower(strings.TrimSpace(input))]
	if !ok {
		return 0, fmt.Errorf("%q is not a valid verdict, expected one of good, bad or skip", input)
	}
	return verdict, nil
}

func (v Verdict) String() string {
	switch v {
	case Good:
		return "good"
	case Bad:
		return "bad"
	case Skip:
		return "skip"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}
