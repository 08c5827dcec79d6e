package keywords

import (
	"sort"
	"unicode/utf8"

	"github.com/fadilmartias/cover-letter-assistant/internal/nlp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	MaxKeywords   = 5
	minTermLength = 4
)

var candidatePOS = map[nlp.POS]bool{
	nlp.Noun:      true,
	nlp.Adjective: true,
	nlp.Verb:      true,
}

// Extractor ranks the domain-relevant terms of a text.
type Extractor struct {
	tagger    nlp.Tagger
	blacklist map[string]struct{}
	priority  []string
}

func NewExtractor(tagger nlp.Tagger, lexicon Lexicon) *Extractor {
	lexicon = lexicon.normalized()
	blacklist := make(map[string]struct{}, len(lexicon.Blacklist))
	for _, term := range lexicon.Blacklist {
		blacklist[term] = struct{}{}
	}
	return &Extractor{
		tagger:    tagger,
		blacklist: blacklist,
		priority:  lexicon.Priority,
	}
}

type termCount struct {
	term  string
	count int
}

// Extract returns at most MaxKeywords lowercase, distinct terms: priority terms
// found in the text first, in lexicon order, then the most frequent remaining
// candidates. Frequency ties keep first-occurrence order.
//
// Priority terms are left out of the frequency fill, so a priority term that
// is also the most frequent word appears once and the freed slot goes to the
// next candidate.
func (e *Extractor) Extract(text string) []string {
	candidates := e.candidates(text)
	if len(candidates) == 0 {
		return []string{}
	}

	counts := make([]termCount, 0, len(candidates))
	index := make(map[string]int, len(candidates))
	for _, term := range candidates {
		if i, ok := index[term]; ok {
			counts[i].count++
			continue
		}
		index[term] = len(counts)
		counts = append(counts, termCount{term: term, count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})

	result := make([]string, 0, MaxKeywords)
	selected := make(map[string]struct{}, MaxKeywords)
	for _, term := range e.priority {
		if len(result) == MaxKeywords {
			break
		}
		if _, ok := index[term]; !ok {
			continue
		}
		if _, dup := selected[term]; dup {
			continue
		}
		result = append(result, term)
		selected[term] = struct{}{}
	}
	for _, tc := range counts {
		if len(result) == MaxKeywords {
			break
		}
		if _, ok := selected[tc.term]; ok {
			continue
		}
		result = append(result, tc.term)
		selected[tc.term] = struct{}{}
	}
	return result
}

// candidates returns the lowercased candidate multiset in text order.
func (e *Extractor) candidates(text string) []string {
	lower := cases.Lower(language.German)
	var out []string
	for _, tok := range e.tagger.Tag(text) {
		if !candidatePOS[tok.POS] || tok.IsStop {
			continue
		}
		term := lower.String(tok.Text)
		if utf8.RuneCountInString(term) < minTermLength {
			continue
		}
		if _, banned := e.blacklist[term]; banned {
			continue
		}
		out = append(out, term)
	}
	return out
}
