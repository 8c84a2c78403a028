package extract

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodePlainText decodes txt/md bytes as UTF-8, falling back to Latin-1
// when the bytes are not valid UTF-8. The fallback maps every byte to a
// rune, so plain-text extraction cannot fail.
func decodePlainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = charmap.ISO8859_1.DecodeByte(b)
	}
	return string(runes)
}
