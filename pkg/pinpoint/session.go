package pinpoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/creasty/defaults"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
	"gopkg.in/yaml.v3"
)

type sessionYaml struct {
	ItemsFile string   `yaml:"itemsFile"`
	Items     []string `yaml:"items"`

	TestCommand  string `yaml:"testCommand"`
	StateCommand string `yaml:"stateCommand"`

	Placeholder string `yaml:"placeholder" default:"{}"`
}

// GetSessionFromConfig reads in a session config in yaml format from a reader
// and initializes the corresponding session struct.
func GetSessionFromConfig(r io.Reader) (*Session, error) {
	var config sessionYaml

	// Read in yaml
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}
	if err := defaults.Set(&config); err != nil {
		return nil, err
	}

	// Convert to Session struct
	session := Session{
		Items:     Sequence(config.Items),
		ItemsFile: config.ItemsFile,

		TestCommand:  config.TestCommand,
		StateCommand: config.StateCommand,

		Placeholder: config.Placeholder,
	}

	return &session, nil
}

// A Session wires an item sequence, the external state and test commands and
// an oracle into one bisection run.
type Session struct {
	Items     Sequence // The items to bisect, good end first. Loaded from ItemsFile when empty
	ItemsFile string   // The path to the item list. Only gets used if Items is empty

	TestCommand  string // The command run to test one item
	StateCommand string // An optional command run before each test to transition the system under test to the item

	Placeholder string // The token in the command templates replaced by the item's value

	Oracle Oracle // Supplies the verdicts. Defaults to a PromptOracle

	Log *logrus.Logger // The log to which information gets printed to

	// Serializes runs of this session. A session owns a single mutable
	// search state, so a Run or Start call waits until any earlier run of
	// the same session has delivered its report
	runSemaphore     *semaphore.Weighted
	runSemaphoreOnce sync.Once

	sequence Sequence // The resolved item sequence of this run

	log *logrus.Entry
}

// acquireRun blocks until no other run of this session is in flight.
func (s *Session) acquireRun() error {
	s.runSemaphoreOnce.Do(func() {
		s.runSemaphore = semaphore.NewWeighted(1)
	})
	if err := s.runSemaphore.Acquire(context.Background(), 1); err != nil {
		return errors.Join(fmt.Errorf("failed to acquire session for a new run"), err)
	}
	return nil
}

// prepare validates the session's configuration and resolves the sequence.
func (s *Session) prepare() error {
	if s.Log == nil {
		// Mute logger
		s.Log = logrus.New()
		s.Log.SetOutput(io.Discard)
	}

	if s.TestCommand == "" {
		return fmt.Errorf("no test command configured")
	}

	s.sequence = s.Items
	if len(s.sequence) == 0 {
		if s.ItemsFile == "" {
			return fmt.Errorf("no items and no items file configured")
		}
		var err error
		s.sequence, err = LoadSequenceFile(s.ItemsFile)
		if err != nil {
			return err
		}
	}

	if s.Placeholder == "" {
		s.Placeholder = DefaultPlaceholder
	}

	s.log = s.Log.WithField("sequence", s.sequence.Digest())
	s.log.Infof("Bisecting %d items", len(s.sequence))

	return nil
}

// testItem runs the state-transition and test commands for one item. Command
// failures are warnings only, the verdict is owned by the oracle.
func (s *Session) testItem(item string) {
	if s.StateCommand != "" {
		action := Action{Template: s.StateCommand, Placeholder: s.Placeholder}
		if err := action.Run(item); err != nil {
			s.log.Warnf("State command for item %s failed - %v", item, err)
		}
	}

	action := Action{Template: s.TestCommand, Placeholder: s.Placeholder}
	if err := action.Run(item); err != nil {
		s.log.Warnf("Test command for item %s exited non-zero - %v", item, err)
	}
}

// Run performs the whole bisection synchronously, blocking on the configured
// oracle after each tested item, and returns the final report.
func (s *Session) Run() (*Report, error) {
	if err := s.acquireRun(); err != nil {
		return nil, err
	}
	defer s.runSemaphore.Release(1)

	if err := s.prepare(); err != nil {
		return nil, err
	}

	oracle := s.Oracle
	if oracle == nil {
		oracle = PromptOracle{}
	}

	engine := Engine{
		Sequence: s.sequence,
		Log:      s.Log,
		Test: func(index int, item string) (Verdict, error) {
			s.log.Infof("Testing item %d of %d: %s", index+1, len(s.sequence), item)
			s.testItem(item)
			return oracle.Judge(index, item)
		},
	}

	return engine.Run()
}

// Start runs the session in the background. It returns a [Candidate] channel
// and a [Report] channel. The candidate channel should be used to get notified
// about items which are ready to be judged. Once the report was received, no
// more candidates will appear in the candidate channel.
func (s *Session) Start() (chan Candidate, chan *Report, error) {
	if err := s.acquireRun(); err != nil {
		return nil, nil, err
	}

	if err := s.prepare(); err != nil {
		s.runSemaphore.Release(1)
		return nil, nil, err
	}

	candidateChan, reportChan := make(chan Candidate), make(chan *Report, 1)

	go func() {
		defer s.runSemaphore.Release(1)

		engine := Engine{
			Sequence: s.sequence,
			Log:      s.Log,
			Test: func(index int, item string) (Verdict, error) {
				s.testItem(item)

				candidate := Candidate{
					Index: index,
					Item:  item,

					verdict: make(chan Verdict),
				}
				candidateChan <- candidate

				// Wait until the candidate was judged
				return <-candidate.verdict, nil
			},
		}

		report, err := engine.Run()
		if err != nil {
			// Only reachable through misconfiguration, prepare caught the rest
			s.log.Errorf("Bisection failed - %v", err)
			return
		}
		reportChan <- report
	}()

	return candidateChan, reportChan, nil
}

// A Candidate is a tested item that is ready to be judged.
type Candidate struct {
	Index int    // The index of the item in the sequence
	Item  string // The item's value

	verdict chan Verdict

	wasJudged bool // If this candidate was already judged
}

// Good tells the session that this candidate does not exhibit the issue.
// If Good is called after the candidate was already judged by a previous
// Good, Bad or Skip method invocation, it will panic.
func (c *Candidate) Good() {
	c.judge(Good)
}

// Bad tells the session that this candidate exhibits the issue.
// If Bad is called after the candidate was already judged by a previous
// Good, Bad or Skip method invocation, it will panic.
func (c *Candidate) Bad() {
	c.judge(Bad)
}

// Skip tells the session that this candidate's test was inconclusive.
// If Skip is called after the candidate was already judged by a previous
// Good, Bad or Skip method invocation, it will panic.
func (c *Candidate) Skip() {
	c.judge(Skip)
}

func (c *Candidate) judge(verdict Verdict) {
	if c.wasJudged {
		panic(fmt.Sprintf("candidate %d (%s) was judged after it was already judged", c.Index, c.Item))
	}
	c.wasJudged = true
	c.verdict <- verdict
}
