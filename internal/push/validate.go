package push

import "strings"

// Push length band, in characters.
const (
	minPushLen = 180
	maxPushLen = 220
)

// Validate checks the push text contract: 180-220 characters inclusive,
// at most one exclamation mark, no colon. Character counts are rune
// counts, the texts are Cyrillic.
func Validate(text string) bool {
	if text == "" {
		return false
	}
	n := len([]rune(text))
	if n < minPushLen || n > maxPushLen {
		return false
	}
	if strings.Count(text, "!") > 1 {
		return false
	}
	if strings.Contains(text, ":") {
		return false
	}
	return true
}
