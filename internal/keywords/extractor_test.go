package keywords

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fadilmartias/cover-letter-assistant/internal/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTagger tags whitespace-separated "word/POS" or "word/POS/stop" items.
type fakeTagger struct{}

func (fakeTagger) Tag(text string) []nlp.Token {
	var tokens []nlp.Token
	for _, item := range strings.Fields(text) {
		parts := strings.Split(item, "/")
		tok := nlp.Token{Text: parts[0], POS: nlp.Noun}
		if len(parts) > 1 {
			tok.POS = nlp.POS(parts[1])
		}
		if len(parts) > 2 && parts[2] == "stop" {
			tok.IsStop = true
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func newFakeExtractor() *Extractor {
	return NewExtractor(fakeTagger{}, DefaultLexicon())
}

func TestExtract_EmptyText(t *testing.T) {
	got := newFakeExtractor().Extract("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtract_FrequencyRanking(t *testing.T) {
	got := newFakeExtractor().Extract("Beratung Vertrieb Beratung Analyse Vertrieb Beratung Planung Service Kontrolle")
	assert.Equal(t, []string{"beratung", "vertrieb", "analyse", "planung", "service"}, got)
}

func TestExtract_TiesKeepFirstOccurrence(t *testing.T) {
	got := newFakeExtractor().Extract("Zeta Alpha Mitte Alpha Zeta Omega")
	assert.Equal(t, []string{"zeta", "alpha", "mitte", "omega"}, got)
}

func TestExtract_FiltersCategoryLengthStopAndBlacklist(t *testing.T) {
	text := strings.Join([]string{
		"Team",          // length 4 passes
		"Ort",           // too short
		"schnell/ADV",   // wrong category
		"SAP/PROPN",     // wrong category
		"arbeiten/VERB", // kept
		"kreativ/ADJ",   // kept
		"Menschen/NOUN/stop",
		"Adresse",
		"E-Mail",
		"Telefon",
	}, " ")

	got := newFakeExtractor().Extract(text)
	assert.Equal(t, []string{"team", "arbeiten", "kreativ"}, got)
}

func TestExtract_PriorityTermsComeFirstInLexiconOrder(t *testing.T) {
	text := "Vertrieb Vertrieb Vertrieb Finanzprodukte Analyse Kundenberatung Analyse"
	got := newFakeExtractor().Extract(text)

	require.Len(t, got, 4)
	assert.Equal(t, []string{"kundenberatung", "finanzprodukte"}, got[:2])
	assert.Equal(t, []string{"vertrieb", "analyse"}, got[2:4])
}

// Priority terms are excluded from the frequency fill. The reference behaviour
// could list a frequent priority term twice; here it appears once and the
// slot is given to the next ranked candidate.
func TestExtract_PriorityTermNotDuplicatedByFrequencyFill(t *testing.T) {
	text := "Kundenberatung Kundenberatung Kundenberatung Vertrieb Analyse Planung Service Kontrolle"
	got := newFakeExtractor().Extract(text)

	assert.Equal(t, []string{"kundenberatung", "vertrieb", "analyse", "planung", "service"}, got)
}

func TestExtract_PriorityMatchesCappedAtFive(t *testing.T) {
	text := "Finanzprodukte Kundenmanagement Bankkaufmann Bankkauffrau Finanzwesen Kundenberatung Vermögensberatung"
	got := newFakeExtractor().Extract(text)

	assert.Equal(t, []string{"vermögensberatung", "kundenberatung", "finanzwesen", "bankkauffrau", "bankkaufmann"}, got)
}

func TestExtract_Invariants(t *testing.T) {
	lexicon := DefaultLexicon()
	extractor := NewExtractor(nlp.NewGermanTagger(), lexicon)

	texts := []string{
		"Persönliche Daten: Adresse Musterstraße 1, Telefon 0123, E-Mail max@example.de",
		"Als Bankkauffrau habe ich Kundenberatung und Vermögensberatung betreut. Kundenberatung macht mir Freude.",
		"Wir suchen eine engagierte Bankkauffrau für die Kundenberatung im Finanzwesen. Sie beraten Kunden zu Finanzprodukten und Finanzprodukte gehören zum Alltag.",
		"!!! ??? 12345",
	}
	blacklisted := map[string]bool{}
	for _, term := range lexicon.Blacklist {
		blacklisted[term] = true
	}

	for _, text := range texts {
		got := extractor.Extract(text)
		assert.LessOrEqual(t, len(got), MaxKeywords, text)

		seen := map[string]bool{}
		for _, term := range got {
			assert.Equal(t, strings.ToLower(term), term)
			assert.False(t, blacklisted[term], "blacklisted term %q in %v", term, got)
			assert.False(t, seen[term], "duplicate term %q in %v", term, got)
			seen[term] = true
		}
	}
}

func TestExtract_GermanTaggerScenario(t *testing.T) {
	extractor := NewExtractor(nlp.NewGermanTagger(), DefaultLexicon())
	got := extractor.Extract("Als Bankkauffrau habe ich Kundenberatung betreut. Kundenberatung und Kreditvergabe machen mir Freude. Kreditvergabe bleibt spannend.")

	require.NotEmpty(t, got)
	assert.Equal(t, "kundenberatung", got[0])
	assert.Equal(t, "bankkauffrau", got[1])
	assert.Contains(t, got, "kreditvergabe")
}

func TestLoadLexicon_Defaults(t *testing.T) {
	lex, err := LoadLexicon("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLexicon(), lex)
}

func TestLoadLexicon_OverridesPriorityOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	err := os.WriteFile(path, []byte("priority:\n  - Softwareentwicklung\n  - \" Kubernetes \"\n"), 0o644)
	require.NoError(t, err)

	lex, err := LoadLexicon(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"softwareentwicklung", "kubernetes"}, lex.Priority)
	assert.Equal(t, DefaultLexicon().Blacklist, lex.Blacklist)
}

func TestLoadLexicon_Errors(t *testing.T) {
	_, err := LoadLexicon("/nonexistent/lexicon.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read lexicon")

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("priority: [unclosed"), 0o644))
	_, err = LoadLexicon(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse lexicon")
}
