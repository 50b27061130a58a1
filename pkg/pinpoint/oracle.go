package pinpoint

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"
)

// An Oracle classifies one tested item's outcome. Implementations may block
// indefinitely, e.g. on human input.
type Oracle interface {
	Judge(index int, item string) (Verdict, error)
}

// A PromptOracle asks a human on the terminal for each verdict. Invalid
// answers are rejected inline and the prompt is repeated until one of the
// recognized verdict spellings is entered.
type PromptOracle struct{}

func (o PromptOracle) Judge(index int, item string) (Verdict, error) {
	prompt := promptui.Prompt{
		Label: fmt.Sprintf("Verdict for item %d (%s) [good/bad/skip]", index, item),
		Validate: func(input string) error {
			_, err := ParseVerdict(input)
			return err
		},
	}

	answer, err := prompt.Run()
	if err != nil {
		return 0, errors.Join(fmt.Errorf("failed to read verdict for item %s", item), err)
	}
	return ParseVerdict(answer)
}

// A ScriptOracle replays verdicts from a reader, one per line, satisfying the
// same contract as [PromptOracle] without a terminal. Lines that do not parse
// as a verdict are dropped with a warning, without consuming a test iteration.
type ScriptOracle struct {
	Log *logrus.Logger // The log to which information gets printed to

	scanner *bufio.Scanner
}

func NewScriptOracle(r io.Reader) *ScriptOracle {
	return &ScriptOracle{scanner: bufio.NewScanner(r)}
}

func (o *ScriptOracle) Judge(index int, item string) (Verdict, error) {
	if o.Log == nil {
		// Mute logger
		o.Log = logrus.New()
		o.Log.SetOutput(io.Discard)
	}

	for o.scanner.Scan() {
		line := o.scanner.Text()
		verdict, err := ParseVerdict(line)
		if err != nil {
			if strings.TrimSpace(line) != "" {
				o.Log.Warnf("Dropping invalid verdict line %q", line)
			}
			continue
		}
		return verdict, nil
	}
	if err := o.scanner.Err(); err != nil {
		return 0, errors.Join(fmt.Errorf("failed to read verdict script"), err)
	}
	return 0, fmt.Errorf("verdict script exhausted before item %d (%s)", index, item)
}
