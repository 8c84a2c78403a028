package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("empty input yields no chunks", func(t *testing.T) {
		chunks, err := Split("", 1000, 200)
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("whitespace-only input yields no chunks", func(t *testing.T) {
		chunks, err := Split(strings.Repeat(" \n\t", 500), 1000, 200)
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("text shorter than size is a single chunk", func(t *testing.T) {
		chunks, err := Split("hello world", 1000, 200)
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, "hello world", chunks[0])
	})

	t.Run("2400 chars with defaults produce three windows", func(t *testing.T) {
		text := buildText(2400)
		chunks, err := Split(text, 1000, 200)
		require.NoError(t, err)
		require.Len(t, chunks, 3)
		assert.Equal(t, text[0:1000], chunks[0])
		assert.Equal(t, text[800:1800], chunks[1])
		assert.Equal(t, text[1600:2400], chunks[2])
	})

	t.Run("1500 chars with defaults produce two windows", func(t *testing.T) {
		text := buildText(1500)
		chunks, err := Split(text, 1000, 200)
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, text[0:1000], chunks[0])
		assert.Equal(t, text[800:1500], chunks[1])
	})

	t.Run("window offsets advance by size minus overlap", func(t *testing.T) {
		text := buildText(5000)
		size, overlap := 700, 150
		step := size - overlap

		chunks, err := Split(text, size, overlap)
		require.NoError(t, err)
		for i, chunk := range chunks {
			start := i * step
			end := start + size
			if end > len(text) {
				end = len(text)
			}
			assert.Equal(t, text[start:end], chunk, "chunk %d", i)
		}
		// The last window must reach the end of the text.
		last := (len(chunks) - 1) * step
		assert.GreaterOrEqual(t, last+size, len(text))
	})

	t.Run("blank windows are dropped without index gaps", func(t *testing.T) {
		// Windows of 4 with no overlap: "abcd", "    ", "efgh".
		chunks, err := Split("abcd    efgh", 4, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"abcd", "efgh"}, chunks)
	})

	t.Run("retained chunks keep surrounding whitespace", func(t *testing.T) {
		chunks, err := Split(" ab ", 4, 0)
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, " ab ", chunks[0])
	})

	t.Run("windows count runes not bytes", func(t *testing.T) {
		text := "日本語日本語"
		chunks, err := Split(text, 3, 1)
		require.NoError(t, err)
		runes := []rune(text)
		require.Len(t, chunks, 3)
		assert.Equal(t, string(runes[0:3]), chunks[0])
		assert.Equal(t, string(runes[2:5]), chunks[1])
		assert.Equal(t, string(runes[4:6]), chunks[2])
	})
}

func TestSplitGeometry(t *testing.T) {
	t.Run("overlap equal to size", func(t *testing.T) {
		_, err := Split("some text", 100, 100)
		assert.ErrorIs(t, err, ErrBadGeometry)
	})

	t.Run("overlap larger than size", func(t *testing.T) {
		_, err := Split("some text", 100, 150)
		assert.ErrorIs(t, err, ErrBadGeometry)
	})

	t.Run("negative overlap", func(t *testing.T) {
		_, err := Split("some text", 100, -1)
		assert.ErrorIs(t, err, ErrBadGeometry)
	})

	t.Run("non-positive size", func(t *testing.T) {
		_, err := Split("some text", 0, 0)
		assert.ErrorIs(t, err, ErrBadGeometry)
	})
}

// buildText produces n characters of non-blank, position-dependent text so
// window comparisons catch off-by-one errors.
func buildText(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('a' + i%26))
	}
	return b.String()
}
