package extractor

import (
	"bytes"
	"fmt"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

const (
	EngineFitz = "fitz"
	EnginePDF  = "pdf"
)

// PDFEngine returns the text layer of each page of a PDF, in page order.
type PDFEngine interface {
	Pages(data []byte) ([]string, error)
}

// NewPDFEngine selects an engine by name; empty selects MuPDF.
func NewPDFEngine(name string) (PDFEngine, error) {
	switch name {
	case "", EngineFitz:
		return FitzEngine{}, nil
	case EnginePDF:
		return PlainEngine{}, nil
	default:
		return nil, fmt.Errorf("unknown PDF engine %q", name)
	}
}

// FitzEngine reads PDFs through MuPDF.
type FitzEngine struct{}

func (FitzEngine) Pages(data []byte) ([]string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return nil, fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// PlainEngine is a pure Go reader for builds without MuPDF.
type PlainEngine struct{}

func (PlainEngine) Pages(data []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: failed to extract text: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
