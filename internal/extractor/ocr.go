package extractor

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"os/exec"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/sirupsen/logrus"
)

// OCR reads scanned PDFs by rasterising each page with MuPDF and passing it to
// the tesseract binary.
type OCR struct {
	Language string
	logger   logrus.FieldLogger
}

func NewOCR(language string, logger logrus.FieldLogger) *OCR {
	if language == "" {
		language = "deu"
	}
	return &OCR{Language: language, logger: logger}
}

// CheckTesseract verifies that tesseract is installed and runnable.
func (o *OCR) CheckTesseract(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, "tesseract", "--version").CombinedOutput()
	if err != nil {
		return fmt.Errorf("tesseract not found or not executable: %w\nOutput: %s", err, string(out))
	}
	o.logger.WithField("version", strings.Split(string(out), "\n")[0]).Info("tesseract available")
	return nil
}

// Recognize returns the OCR text of every page, concatenated in page order.
func (o *OCR) Recognize(ctx context.Context, data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var text strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		pageText, err := o.recognizePage(ctx, doc, n)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", n+1, err)
		}
		o.logger.WithFields(logrus.Fields{"page": n + 1, "chars": len(pageText)}).Debug("page OCR finished")
		text.WriteString(pageText)
	}
	return text.String(), nil
}

func (o *OCR) recognizePage(ctx context.Context, doc *fitz.Document, n int) (string, error) {
	img, err := doc.Image(n)
	if err != nil {
		return "", fmt.Errorf("failed to extract image: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, img); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to write PNG: %w", err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "tesseract", tmpPath, "stdout", "-l", o.Language)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("tesseract error: %w, output: %s", err, stderr.String())
	}
	return string(out), nil
}
