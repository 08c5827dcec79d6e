package nlp

// POS is a coarse grammatical category in the Universal Dependencies tag set.
type POS string

const (
	Noun        POS = "NOUN"
	ProperNoun  POS = "PROPN"
	Adjective   POS = "ADJ"
	Verb        POS = "VERB"
	Adverb      POS = "ADV"
	Numeral     POS = "NUM"
	Punctuation POS = "PUNCT"
	Determiner  POS = "DET"
	Pronoun     POS = "PRON"
	Adposition  POS = "ADP"
	CoordConj   POS = "CCONJ"
	SubordConj  POS = "SCONJ"
	Auxiliary   POS = "AUX"
	Particle    POS = "PART"
	Other       POS = "X"
)

// Token is one tagged unit of text.
type Token struct {
	Text   string
	POS    POS
	IsStop bool
}

// Tagger splits text into tokens and assigns each a category and stop-word flag.
type Tagger interface {
	Tag(text string) []Token
}
