package pinpoint

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestScriptOracle(t *testing.T) {
	t.Run("Verdicts are replayed in order", func(t *testing.T) {
		oracle := NewScriptOracle(strings.NewReader("good\nbad\nskip\n"))

		for i, expected := range []Verdict{Good, Bad, Skip} {
			verdict, err := oracle.Judge(i, "item")
			assert.Nil(t, err, "Judge returned an error")
			assert.Equal(t, expected, verdict, "Wrong verdict")
		}
	})

	t.Run("Invalid lines warn and do not consume an iteration", func(t *testing.T) {
		oracle := NewScriptOracle(strings.NewReader("definitely not a verdict\n\ng\n"))

		var warnings bytes.Buffer
		oracle.Log = logrus.New()
		oracle.Log.SetOutput(&warnings)

		verdict, err := oracle.Judge(0, "item")
		assert.Nil(t, err, "Judge returned an error")
		assert.Equal(t, Good, verdict, "Invalid lines were not skipped")
		assert.Contains(t, warnings.String(), "definitely not a verdict", "Dropped line was not warned about")
	})

	t.Run("Exhausted script is an error", func(t *testing.T) {
		oracle := NewScriptOracle(strings.NewReader("bad\n"))

		_, err := oracle.Judge(0, "item")
		assert.Nil(t, err, "Judge returned an error")

		_, err = oracle.Judge(1, "item")
		assert.NotNil(t, err, "Exhausted script returned no error")
	})
}
