package keywords

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Lexicon holds the language-specific term lists used when ranking keywords.
type Lexicon struct {
	// Blacklist excludes personal and contact-data terms from candidacy.
	Blacklist []string `yaml:"blacklist"`
	// Priority terms are placed first, in this order, when present.
	Priority []string `yaml:"priority"`
}

// DefaultLexicon is tuned for German banking applications.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Blacklist: []string{
			"daten", "persönliche", "nachname", "geburtsort", "geburtstag",
			"adresse", "telefon", "email", "e-mail", "straße", "postleitzahl",
		},
		Priority: []string{
			"vermögensberatung", "kundenberatung", "finanzwesen", "bankkauffrau",
			"bankkaufmann", "kundenmanagement", "finanzprodukte",
		},
	}
}

// LoadLexicon reads a YAML lexicon. A list missing from the file keeps its
// default; an empty path returns the defaults.
func LoadLexicon(path string) (Lexicon, error) {
	lex := DefaultLexicon()
	if path == "" {
		return lex, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("failed to read lexicon %s: %w", path, err)
	}

	var file struct {
		Blacklist *[]string `yaml:"blacklist"`
		Priority  *[]string `yaml:"priority"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Lexicon{}, fmt.Errorf("failed to parse lexicon %s: %w", path, err)
	}
	if file.Blacklist != nil {
		lex.Blacklist = *file.Blacklist
	}
	if file.Priority != nil {
		lex.Priority = *file.Priority
	}
	return lex.normalized(), nil
}

func (l Lexicon) normalized() Lexicon {
	lower := cases.Lower(language.German)
	norm := func(in []string) []string {
		out := make([]string, 0, len(in))
		for _, term := range in {
			if t := strings.TrimSpace(term); t != "" {
				out = append(out, lower.String(t))
			}
		}
		return out
	}
	return Lexicon{Blacklist: norm(l.Blacklist), Priority: norm(l.Priority)}
}
