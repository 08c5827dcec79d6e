package model

const DefaultTone = "Professionell"

// Tones offered by the interactive form.
var Tones = []string{"Professionell", "Kreativ", "Formell"}

// ApplicantProfile holds the free-text fields supplied with a request.
type ApplicantProfile struct {
	Name       string `json:"name" validate:"required"`
	Company    string `json:"company" validate:"required"`
	Strengths  string `json:"strengths" validate:"required,meaningful"`
	Weaknesses string `json:"weaknesses" validate:"required,meaningful"`
	Tone       string `json:"tone"`
}

// ToneOrDefault returns the selected tone, falling back to DefaultTone.
func (p ApplicantProfile) ToneOrDefault() string {
	if p.Tone == "" {
		return DefaultTone
	}
	return p.Tone
}
