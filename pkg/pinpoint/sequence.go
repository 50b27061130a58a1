package pinpoint

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opencontainers/go-digest"
)

// A Sequence is an immutable ordered list of opaque item identifiers, where
// sequence[0] is the end assumed to be good and sequence[N-1] the end assumed
// to be bad. The items carry no semantics beyond their position.
type Sequence []string

// LoadSequence reads a sequence from r, one item per line.
// Leading and trailing whitespace is trimmed and whitespace-only lines are
// dropped, the ordering of the remaining lines is preserved.
func LoadSequence(r io.Reader) (Sequence, error) {
	var seq Sequence
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		item := strings.TrimSpace(scanner.Text())
		if item == "" {
			continue
		}
		seq = append(seq, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to read item list"), err)
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("item list contains no items")
	}
	return seq, nil
}

// LoadSequenceFile reads a sequence from the file at the passed path.
func LoadSequenceFile(path string) (Sequence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to open item list %s", path), err)
	}
	defer file.Close()
	return LoadSequence(file)
}

// Digest returns a stable fingerprint of the sequence's contents, for
// identifying runs over the same item list in logs and reports.
func (s Sequence) Digest() string {
	return digest.FromString(strings.Join(s, "\n")).Encoded()
}
