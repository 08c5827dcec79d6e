package usecase

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	SystemPrompt   = "Du bist ein professioneller Bewerbungsassistent."
	excerptRunes   = 1000
	keywordJoinSep = ", "
)

var germanLower = cases.Lower(language.German)

type promptData struct {
	Tone        string
	Name        string
	Company     string
	Role        string
	CVText      string
	JobText     string
	CVKeywords  []string
	JobKeywords []string
	Strengths   string
	Weaknesses  string
}

// toneAdjective inflects a tone label for "ein ...es Motivationsschreiben".
func toneAdjective(tone string) string {
	return germanLower.String(tone) + "es"
}

// excerpt returns at most n code points of s.
func excerpt(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func buildPrompt(d promptData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Erstelle ein %s Motivationsschreiben auf Deutsch für %s, der/die sich bei %s auf eine Position als %s bewirbt. Verwende die folgenden Informationen:\n\n",
		toneAdjective(d.Tone), d.Name, d.Company, d.Role)
	fmt.Fprintf(&b, "**Lebenslauf (Auszug)**: %s\n", excerpt(d.CVText, excerptRunes))
	fmt.Fprintf(&b, "**Wichtige Schlüsselwörter aus dem Lebenslauf**: %s\n", strings.Join(d.CVKeywords, keywordJoinSep))
	fmt.Fprintf(&b, "**Stellenprofil (Auszug)**: %s\n", excerpt(d.JobText, excerptRunes))
	fmt.Fprintf(&b, "**Wichtige Schlüsselwörter aus dem Stellenprofil**: %s\n", strings.Join(d.JobKeywords, keywordJoinSep))
	fmt.Fprintf(&b, "**Stärken**: %s\n", d.Strengths)
	fmt.Fprintf(&b, "**Schwächen**: %s\n\n", d.Weaknesses)
	b.WriteString("Das Schreiben soll:\n")
	b.WriteString("- Höflich und professionell sein.\n")
	b.WriteString("- Die Qualifikationen des Bewerbers mit den Anforderungen der Stelle verknüpfen.\n")
	b.WriteString("- Stärken hervorheben und Schwächen positiv darstellen.\n")
	b.WriteString("- Maximal 400 Wörter lang sein.\n")
	b.WriteString("- Mit einer höflichen Schlussformel enden.\n")
	return b.String()
}
