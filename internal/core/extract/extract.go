// Package extract converts raw document bytes into a single text string,
// dispatching on the file's declared format.
package extract

import (
	"fmt"
	"strings"

	"github.com/markdave123-py/Indexa/internal/core"
)

// Format enumerates the supported document formats.
type Format string

const (
	FormatText     Format = ".txt"
	FormatMarkdown Format = ".md"
	FormatDocx     Format = ".docx"
	FormatPDF      Format = ".pdf"
)

// ParseFormat maps a file extension (case-insensitive, leading dot
// required) onto a supported Format.
func ParseFormat(ext string) (Format, bool) {
	switch Format(strings.ToLower(ext)) {
	case FormatText:
		return FormatText, true
	case FormatMarkdown:
		return FormatMarkdown, true
	case FormatDocx:
		return FormatDocx, true
	case FormatPDF:
		return FormatPDF, true
	}
	return "", false
}

// Extract returns the text content of data. It never mutates data.
func Extract(data []byte, format Format) (string, error) {
	switch format {
	case FormatText, FormatMarkdown:
		return decodePlainText(data), nil
	case FormatDocx:
		return extractDocx(data)
	case FormatPDF:
		return extractPDF(data)
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, string(format))
}
