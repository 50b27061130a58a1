package pinpoint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadSequence(t *testing.T) {
	t.Run("Whitespace lines are dropped and order is preserved", func(t *testing.T) {
		input := "v1.0\n\n  \t \nv1.1\n  v1.2  \n\nv1.3"

		seq, err := LoadSequence(strings.NewReader(input))
		assert.Nil(t, err, "LoadSequence returned an error")
		assert.Equal(t, Sequence{"v1.0", "v1.1", "v1.2", "v1.3"}, seq, "Wrong sequence")
	})

	t.Run("Empty input is rejected", func(t *testing.T) {
		_, err := LoadSequence(strings.NewReader("\n  \n\t\n"))
		assert.NotNil(t, err, "LoadSequence accepted an empty item list")
	})
}

func TestLoadSequenceFile(t *testing.T) {
	_, err := LoadSequenceFile("does/not/exist.txt")
	assert.NotNil(t, err, "LoadSequenceFile accepted a missing file")
}

func TestSequenceDigest(t *testing.T) {
	values := []struct {
		first  Sequence
		second Sequence
		equal  bool
	}{
		{Sequence{"a", "b"}, Sequence{"a", "b"}, true},
		{Sequence{"a", "b"}, Sequence{"b", "a"}, false},
		{Sequence{"a", "b"}, Sequence{"a", "b", "c"}, false},
	}

	for _, v := range values {
		if v.equal {
			assert.Equal(t, v.first.Digest(), v.second.Digest(), "Digest of equal sequences differs")
		} else {
			assert.NotEqual(t, v.first.Digest(), v.second.Digest(), "Digest of different sequences matches")
		}
	}
}
