package nlp

import "strings"

// Closed word classes. Anything listed here keeps its class regardless of
// capitalisation, which covers the polite "Sie"/"Ihnen".
var germanClosedClass = func() map[string]POS {
	m := make(map[string]POS)
	add := func(pos POS, words string) {
		for _, w := range strings.Fields(words) {
			m[w] = pos
		}
	}
	add(Determiner, `der die das dem den des ein eine einem einen einer eines
		kein keine keinem keinen keiner keines dieser diese dieses diesem diesen
		jeder jede jedes jedem jeden jene jener jenes jenem jenen alle allen aller
		alles manche mancher manches welche welcher welches welchem welchen
		mein meine meinem meinen meiner meines dein deine deinem deinen deiner
		sein seine seinem seinen seiner seines ihr ihre ihrem ihren ihrer ihres
		unser unsere unserem unseren unserer euer eure eurem euren eurer`)
	add(Pronoun, `ich du er sie es wir mich dich ihn uns euch mir dir ihm ihnen
		sich man jemand niemand etwas nichts was wer wen wem wessen dessen deren
		denen selbst einander`)
	add(Adposition, `an auf aus bei beim bis durch für gegen hinter in im ins mit
		nach neben ohne seit über um unter von vom vor während wegen zu zum zur
		zwischen ab trotz innerhalb außerhalb gemäß laut statt`)
	add(CoordConj, `und oder aber sondern denn sowie sowohl noch beziehungsweise bzw`)
	add(SubordConj, `dass daß weil wenn ob als obwohl damit sodass nachdem bevor
		während indem falls seitdem`)
	add(Auxiliary, `bin bist ist sind seid war warst waren wart wäre wären sei
		seien habe hast hat haben habt hatte hatten hätte hätten werde wirst wird
		werden werdet wurde wurden würde würden kann kannst können könnt konnte
		konnten könnte muss musst müssen müsst musste mussten soll sollst sollen
		sollt sollte sollten will willst wollen wollt wollte wollten darf dürfen
		mag mögen möchte möchten gewesen geworden`)
	add(Particle, `nicht zu ja nein doch nur auch`)
	add(Adverb, `sehr schon noch bereits immer nie oft gern gerne heute jetzt dort
		hier dann danach daher deshalb zudem außerdem ebenfalls besonders
		insbesondere zusätzlich ebenso bisher stets gleichzeitig zuvor sofort
		wieder weiter mehr weniger etwa rund fast kaum`)
	return m
}()

// Adjective endings, matched against the uninflected stem.
var adjectiveSuffixes = []string{
	"lich", "isch", "ig", "bar", "sam", "haft", "los", "voll", "iv", "iell",
	"uell", "nell", "ös", "är", "ent", "ant", "frei", "reich", "wert",
	"ial", "tal", "nal", "ral", "bal", "mal", "yal", "eal",
}

var inflectionEndings = []string{"en", "em", "er", "es", "e"}

// Verb prefixes that turn an "-igen"/"-lichen" word into a verb
// (beschäftigen, benötigen, ermöglichen).
var inseparableVerbPrefixes = []string{"be", "er", "ver", "ent", "zer", "ge"}

var verbEndings = []string{"ieren", "iert", "ierte", "en", "ern", "eln", "te", "ten", "test", "st", "t"}

// Noun endings that block an adjective reading for sentence-initial words.
var nounSuffixes = []string{
	"ung", "heit", "keit", "schaft", "tion", "ität", "nis", "ment", "tur",
	"ik", "ie", "ling", "tum", "ismus", "ist", "eur", "or",
}

func wordSet(words string) map[string]struct{} {
	fields := strings.Fields(words)
	set := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		set[w] = struct{}{}
	}
	return set
}
