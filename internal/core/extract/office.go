package extract

import (
	"bytes"
	"fmt"
	"strings"

	"code.sajari.com/docconv"

	"github.com/markdave123-py/Indexa/internal/core"
)

// extractDocx parses a word-processor document and joins its non-empty
// paragraphs with single newlines.
func extractDocx(data []byte) (string, error) {
	body, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", core.ErrExtraction, err)
	}
	return joinNonEmptyLines(body), nil
}

// extractPDF parses a paginated document and joins the pages' text in page
// order; pages yielding no text are skipped rather than kept as blank lines.
func extractPDF(data []byte) (string, error) {
	body, _, err := docconv.ConvertPDF(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", core.ErrExtraction, err)
	}
	return joinNonEmptyLines(body), nil
}

func joinNonEmptyLines(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, "\n")
}
