package config

import (
	"os"
	"sync"
)

type ExtractionConfig struct {
	PDFEngine   string
	OCRFallback bool
	OCRLanguage string
	LexiconPath string
}

var (
	extractionConfig *ExtractionConfig
	extractionOnce   sync.Once
)

func LoadExtractionConfig() *ExtractionConfig {
	extractionOnce.Do(func() {
		extractionConfig = readExtractionConfig()
	})
	return extractionConfig
}

func readExtractionConfig() *ExtractionConfig {
	return &ExtractionConfig{
		PDFEngine:   os.Getenv("PDF_ENGINE"),
		OCRFallback: envBool("PDF_OCR_FALLBACK", false),
		OCRLanguage: envOr("OCR_LANGUAGE", "deu"),
		LexiconPath: os.Getenv("KEYWORD_LEXICON_PATH"),
	}
}
