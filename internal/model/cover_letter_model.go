package model

// CoverLetter is a generated letter plus the keywords that steered it.
type CoverLetter struct {
	Text        string
	CVKeywords  []string
	JobKeywords []string
}

// ExportedDocument is a rendered letter and the key it was stored under.
type ExportedDocument struct {
	Key         string
	Filename    string
	ContentType string
	Data        []byte
}
