package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"digits only", "1234567890", false},
		{"umlaut word", "Teamfähigkeit", true},
		{"too short", "Team", false},
		{"nine chars", "Teamgeist", false},
		{"ten chars with run", "Teamgeist!", true},
		{"no three letter run", "ab cd ef gh ij", false},
		{"eszett run", "1234567 ßßß", true},
		{"accented counts as one char", "Zuverlässig", true},
		{"letters but short runs", "a1b2c3d4e5f6", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidInput(tt.input))
		})
	}
}
