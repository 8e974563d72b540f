package util

import (
	"regexp"
	"strings"
)

var (
	scriptBlockPattern = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	htmlTagPattern     = regexp.MustCompile(`<[^>]*>`)
)

// SanitizeText strips HTML from free-text input before storage so notes
// cannot inject markup into an HTML-rendering client. Script elements are
// removed along with their contents, any remaining tags are dropped, and
// surrounding whitespace is trimmed.
func SanitizeText(text string) string {
	text = scriptBlockPattern.ReplaceAllString(text, "")
	text = htmlTagPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
