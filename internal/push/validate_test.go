package push

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cyr(n int) string { return strings.Repeat("а", n) }

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"too short", cyr(179), false},
		{"lower bound", cyr(180), true},
		{"upper bound", cyr(220), true},
		{"too long", cyr(221), false},
		{"one exclamation ok", cyr(199) + "!", true},
		{"two exclamations rejected", cyr(198) + "!!", false},
		{"colon rejected", cyr(199) + ":", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.text))
		})
	}
}

func TestValidate_CountsRunesNotBytes(t *testing.T) {
	// 200 Cyrillic characters are 400 bytes; the band is character-based.
	assert.True(t, Validate(cyr(200)))
}
