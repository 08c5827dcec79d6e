package validation

import (
	"regexp"
	"unicode/utf8"
)

const minInputLength = 10

var letterRun = regexp.MustCompile(`[a-zA-ZäöüÄÖÜß]{3,}`)

// IsValidInput reports whether free text is worth sending downstream: at least
// ten characters and a run of three letters somewhere in it.
func IsValidInput(text string) bool {
	return utf8.RuneCountInString(text) >= minInputLength && letterRun.MatchString(text)
}
