package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/cover-letter-assistant/internal/apperr"
	"github.com/fadilmartias/cover-letter-assistant/internal/model"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

const previewChars = 100

// Extractor turns uploaded PDF and DOCX documents into plain text.
type Extractor struct {
	pdf    PDFEngine
	ocr    *OCR
	logger logrus.FieldLogger
}

// New builds an Extractor. ocr may be nil to disable the OCR fallback for
// PDFs without a text layer.
func New(pdf PDFEngine, ocr *OCR, logger logrus.FieldLogger) *Extractor {
	return &Extractor{pdf: pdf, ocr: ocr, logger: logger}
}

// Extract returns the document text. Read errors and empty results come back
// as *apperr.Error values; panics inside the document libraries are recovered
// and reported the same way as read errors.
func (e *Extractor) Extract(ctx context.Context, doc model.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	log := e.logger.WithFields(logrus.Fields{
		"file":       doc.Filename,
		"media_type": doc.MediaType,
		"size":       len(doc.Data),
	})

	var (
		text  string
		err   error
		label string
	)
	switch doc.MediaType {
	case model.MediaTypePDF:
		label = "PDF"
		text, err = guard(func() (string, error) { return e.extractPDF(ctx, doc.Data) })
	case model.MediaTypeDOCX:
		label = "DOCX"
		text, err = guard(func() (string, error) { return extractDOCX(doc.Data) })
	default:
		return "", apperr.New(apperr.KindUnsupportedFormat,
			fmt.Sprintf("Ungültiges Dateiformat: %s. Nur PDF oder DOCX erlaubt.", doc.MediaType))
	}
	if err != nil {
		log.WithError(err).Errorf("failed to read %s", label)
		return "", apperr.Wrap(apperr.KindUnsupportedFormat, fmt.Sprintf("Fehler beim Lesen der %s", label), err)
	}

	text = norm.NFC.String(text)
	if strings.TrimSpace(text) == "" {
		log.Warnf("no text found in %s", label)
		return "", apperr.New(apperr.KindNoText, fmt.Sprintf("Kein extrahierbarer Text in der %s-Datei.", label))
	}

	log.WithField("preview", preview(text)).Debug("extracted text")
	return text, nil
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte) (string, error) {
	pages, err := e.pdf.Pages(data)
	if err != nil {
		return "", err
	}
	text := strings.Join(pages, "")
	if strings.TrimSpace(text) != "" || e.ocr == nil {
		return text, nil
	}

	e.logger.Info("PDF has no text layer, falling back to OCR")
	return e.ocr.Recognize(ctx, data)
}

func extractDOCX(data []byte) (string, error) {
	paragraphs, err := ReadDocxParagraphs(data)
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, ""), nil
}

func guard(fn func() (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("document library panic: %v", r)
		}
	}()
	return fn()
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewChars {
		return string(runes[:previewChars])
	}
	return text
}
