// Package chunker splits extracted text into fixed-size overlapping
// segments for embedding.
package chunker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadGeometry reports a window configuration that could never advance.
var ErrBadGeometry = errors.New("chunker: overlap must be smaller than size")

// Split slides a window of size runes over text, advancing size-overlap
// runes per step. Windows that are blank after trimming are dropped; the
// retained windows keep their original, untrimmed text. Indices in the
// returned slice are therefore contiguous even when blank windows were
// skipped.
//
// The sequence is empty iff text is empty or every window is whitespace.
func Split(text string, size, overlap int) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w (size=%d)", ErrBadGeometry, size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("%w (size=%d overlap=%d)", ErrBadGeometry, size, overlap)
	}

	runes := []rune(text)
	step := size - overlap

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		window := string(runes[start:end])
		if strings.TrimSpace(window) != "" {
			chunks = append(chunks, window)
		}
	}
	return chunks, nil
}
