package pipeline

import (
	"net/url"
	"path"
	"strings"

	"github.com/markdave123-py/Indexa/internal/core/extract"
)

// skipReason applies the pre-fetch filtering predicates in order:
// deletion events, unsupported formats, and folder markers. A non-empty
// reason means the record is dropped without side effects.
func skipReason(eventName, key string) (string, bool) {
	if !strings.HasPrefix(eventName, "ObjectCreated") {
		return "event is not an object creation (" + eventName + ")", true
	}
	if _, ok := extract.ParseFormat(extension(key)); !ok {
		return "unsupported file type " + extension(key), true
	}
	if strings.HasSuffix(key, "/") {
		return "key is a folder marker", true
	}
	return "", false
}

func extension(key string) string {
	return path.Ext(key)
}

// decodeKey reverses the URL encoding S3 applies to object keys in event
// notifications (spaces arrive as "+"). Malformed escapes fall back to
// the raw key.
func decodeKey(key string) string {
	decoded, err := url.QueryUnescape(key)
	if err != nil {
		return key
	}
	return decoded
}
