package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToneAdjective(t *testing.T) {
	assert.Equal(t, "professionelles", toneAdjective("Professionell"))
	assert.Equal(t, "kreatives", toneAdjective("Kreativ"))
	assert.Equal(t, "formelles", toneAdjective("Formell"))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "Grü", excerpt("Grüße", 3))
	assert.Equal(t, "kurz", excerpt("kurz", 1000))
	assert.Equal(t, "", excerpt("", 10))
}

func TestBuildPrompt_Rules(t *testing.T) {
	prompt := buildPrompt(promptData{Tone: "Formell", Name: "Erika", Company: "Bank AG", Role: "Bankkauffrau/-mann"})

	assert.Contains(t, prompt, "Erstelle ein formelles Motivationsschreiben auf Deutsch für Erika, der/die sich bei Bank AG")
	assert.Contains(t, prompt, "- Maximal 400 Wörter lang sein.")
	assert.Contains(t, prompt, "- Mit einer höflichen Schlussformel enden.")
}
