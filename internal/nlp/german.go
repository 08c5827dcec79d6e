package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// GermanTagger is a rule-based tagger for German prose. It leans on German
// orthography: nouns are capitalised, so capitalisation carries most of the
// signal, and suffix rules separate adjectives from verbs among lowercase words.
type GermanTagger struct {
	stopWords   map[string]struct{}
	closedClass map[string]POS
}

func NewGermanTagger() *GermanTagger {
	return &GermanTagger{
		stopWords:   germanStopWords,
		closedClass: germanClosedClass,
	}
}

// Tag implements Tagger. It is safe for concurrent use.
func (g *GermanTagger) Tag(text string) []Token {
	lower := cases.Lower(language.German)
	words := tokenize(norm.NFC.String(text))

	tokens := make([]Token, 0, len(words))
	sentenceStart := true
	for _, w := range words {
		if w.punct {
			tokens = append(tokens, Token{Text: w.text, POS: Punctuation})
			if strings.ContainsAny(w.text, ".!?") {
				sentenceStart = true
			}
			continue
		}
		folded := lower.String(w.text)
		_, stop := g.stopWords[folded]
		tokens = append(tokens, Token{
			Text:   w.text,
			POS:    g.classify(w.text, folded, sentenceStart),
			IsStop: stop,
		})
		sentenceStart = false
	}
	return tokens
}

func (g *GermanTagger) classify(word, folded string, sentenceStart bool) POS {
	if !hasLetter(word) {
		return Numeral
	}
	if pos, ok := g.closedClass[folded]; ok {
		return pos
	}
	if isAcronym(word) {
		return ProperNoun
	}
	first, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(first) {
		if sentenceStart && isAdjective(folded) && !hasAnySuffix(folded, nounSuffixes) {
			return Adjective
		}
		return Noun
	}
	switch {
	case isAdjective(folded):
		return Adjective
	case isVerb(folded):
		return Verb
	default:
		return Adverb
	}
}

func isAdjective(w string) bool {
	if isPrefixedVerb(w) {
		return false
	}
	for _, stem := range stems(w) {
		if utf8.RuneCountInString(stem) < 5 {
			continue
		}
		if hasAnySuffix(stem, adjectiveSuffixes) {
			return true
		}
	}
	return false
}

// isPrefixedVerb catches infinitives such as "beschäftigen" or "ermöglichen"
// whose stems look adjectival.
func isPrefixedVerb(w string) bool {
	if !strings.HasSuffix(w, "igen") && !strings.HasSuffix(w, "lichen") {
		return false
	}
	if strings.HasSuffix(w, "lichen") {
		switch w {
		case "ermöglichen", "verwirklichen", "veröffentlichen", "verdeutlichen", "vereinheitlichen":
			return true
		}
		return false
	}
	for _, p := range inseparableVerbPrefixes {
		if strings.HasPrefix(w, p) {
			return true
		}
	}
	return false
}

func isVerb(w string) bool {
	if utf8.RuneCountInString(w) < 4 {
		return false
	}
	return hasAnySuffix(w, verbEndings)
}

// stems returns w and w with each inflection ending removed.
func stems(w string) []string {
	out := []string{w}
	for _, e := range inflectionEndings {
		if strings.HasSuffix(w, e) {
			out = append(out, strings.TrimSuffix(w, e))
		}
	}
	return out
}

func hasAnySuffix(w string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isAcronym(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters >= 2
}

type rawToken struct {
	text  string
	punct bool
}

// tokenize splits on anything that is not a letter or digit. A hyphen between
// two word characters stays inside the token ("E-Mail", "Kunden-Service").
func tokenize(text string) []rawToken {
	runes := []rune(text)
	var out []rawToken
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, rawToken{text: string(cur)})
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		switch {
		case isWordRune(r):
			cur = append(cur, r)
		case r == '-' && len(cur) > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			cur = append(cur, r)
		default:
			flush()
			if unicode.IsPunct(r) || unicode.IsSymbol(r) {
				out = append(out, rawToken{text: string(r), punct: true})
			}
		}
	}
	flush()
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
