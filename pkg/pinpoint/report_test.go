package pinpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeReport(t *testing.T) {
	seq := Sequence{"c1", "c2", "c3", "c4", "c5", "c6", "c7"}

	t.Run("Wide boundary annotates skipped and untested items", func(t *testing.T) {
		report := synthesizeReport(seq, searchState{
			lastGood: 1,
			firstBad: 5,
			ignored:  []int{2, 4},
		})

		assert.True(t, report.Conclusive(), "Report with both bounds not conclusive")
		assert.False(t, report.Pinpointed(), "Wide boundary reported as pinpointed")
		assert.Equal(t, "c2", report.LastGoodItem, "Wrong last good item")
		assert.Equal(t, "c6", report.FirstBadItem, "Wrong first bad item")
		assert.Equal(t, []BoundaryItem{
			{Index: 2, Item: "c3", Status: Ignored},
			{Index: 3, Item: "c4", Status: Untested},
			{Index: 4, Item: "c5", Status: Ignored},
		}, report.Boundary, "Wrong boundary annotation")
	})

	t.Run("Only good bound known", func(t *testing.T) {
		report := synthesizeReport(seq, searchState{lastGood: 4, firstBad: None, ignored: []int{5, 6}})

		assert.False(t, report.Conclusive(), "Report without a bad bound reported as conclusive")
		assert.Equal(t, 4, report.LastGood, "Wrong last good index")
		assert.Equal(t, None, report.FirstBad, "Unset first bad index not reported as None")
		assert.Empty(t, report.FirstBadItem, "Unset first bad item not empty")
		assert.Empty(t, report.Boundary, "Inconclusive report has a boundary range")
	})

	t.Run("Only bad bound known", func(t *testing.T) {
		report := synthesizeReport(seq, searchState{lastGood: None, firstBad: 0})

		assert.False(t, report.Conclusive(), "Report without a good bound reported as conclusive")
		assert.Equal(t, 0, report.FirstBad, "Wrong first bad index")
		assert.Empty(t, report.LastGoodItem, "Unset last good item not empty")
	})

	t.Run("No bound known", func(t *testing.T) {
		report := synthesizeReport(seq, searchState{lastGood: None, firstBad: None, ignored: []int{0, 1}})

		assert.False(t, report.Conclusive(), "Empty state reported as conclusive")
		assert.Equal(t, []int{0, 1}, report.Ignored, "Wrong skipped indices")
	})

	t.Run("Boundary status strings", func(t *testing.T) {
		assert.Equal(t, "ignored", Ignored.String(), "Wrong status string")
		assert.Equal(t, "untested", Untested.String(), "Wrong status string")
	})
}
