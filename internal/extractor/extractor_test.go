package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/cover-letter-assistant/internal/apperr"
	"github.com/fadilmartias/cover-letter-assistant/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pdfDoc() model.Document {
	return model.Document{Filename: "cv.pdf", MediaType: model.MediaTypePDF, Data: []byte("%PDF-1.4")}
}

func TestExtract_PDFPagesConcatenatedWithoutSeparator(t *testing.T) {
	ex := New(fakeEngine{pages: []string{"Seite eins", "", "Seite zwei"}}, nil, quietLogger())

	text, err := ex.Extract(context.Background(), pdfDoc())
	require.NoError(t, err)
	assert.Equal(t, "Seite einsSeite zwei", text)
}

func TestExtract_PDFWithoutTextIsNoText(t *testing.T) {
	ex := New(fakeEngine{pages: []string{"", "  \n "}}, nil, quietLogger())

	_, err := ex.Extract(context.Background(), pdfDoc())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNoText))
	assert.Contains(t, err.Error(), "Kein extrahierbarer Text in der PDF-Datei.")
}

func TestExtract_PDFReadErrorIsUnsupportedFormat(t *testing.T) {
	ex := New(fakeEngine{err: errors.New("failed to read pdf: not a PDF file")}, nil, quietLogger())

	_, err := ex.Extract(context.Background(), pdfDoc())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUnsupportedFormat))
	assert.Contains(t, err.Error(), "Fehler beim Lesen der PDF")
	assert.Contains(t, err.Error(), "not a PDF file")
}

func TestExtract_EnginePanicIsRecovered(t *testing.T) {
	ex := New(fakeEngine{panic: true}, nil, quietLogger())

	_, err := ex.Extract(context.Background(), pdfDoc())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUnsupportedFormat))
	assert.Contains(t, err.Error(), "malformed xref table")
}

func TestExtract_PlainEngineRejectsGarbage(t *testing.T) {
	ex := New(PlainEngine{}, nil, quietLogger())

	doc := model.Document{Filename: "cv.pdf", MediaType: model.MediaTypePDF, Data: []byte("this is not a pdf")}
	_, err := ex.Extract(context.Background(), doc)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUnsupportedFormat))
}

func TestExtract_DOCXParagraphsConcatenated(t *testing.T) {
	ex := New(fakeEngine{}, nil, quietLogger())
	data := buildDocx(t, para("Erfahrung in der Kundenberatung.")+para(" Bankkauffrau seit 2019"))

	text, err := ex.Extract(context.Background(), model.Document{Filename: "cv.docx", MediaType: model.MediaTypeDOCX, Data: data})
	require.NoError(t, err)
	assert.Equal(t, "Erfahrung in der Kundenberatung. Bankkauffrau seit 2019", text)
}

func TestExtract_DOCXWhitespaceOnlyIsNoText(t *testing.T) {
	ex := New(fakeEngine{}, nil, quietLogger())
	data := buildDocx(t, para("   ")+para(""))

	_, err := ex.Extract(context.Background(), model.Document{Filename: "cv.docx", MediaType: model.MediaTypeDOCX, Data: data})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNoText))
	assert.Contains(t, err.Error(), "DOCX-Datei")
}

func TestExtract_CorruptDOCX(t *testing.T) {
	ex := New(fakeEngine{}, nil, quietLogger())

	_, err := ex.Extract(context.Background(), model.Document{Filename: "cv.docx", MediaType: model.MediaTypeDOCX, Data: []byte("PK but not really")})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUnsupportedFormat))
	assert.Contains(t, err.Error(), "Fehler beim Lesen der DOCX")
}

func TestExtract_UnsupportedMediaType(t *testing.T) {
	ex := New(fakeEngine{}, nil, quietLogger())

	_, err := ex.Extract(context.Background(), model.Document{Filename: "cv.txt", MediaType: "text/plain", Data: []byte("hallo")})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUnsupportedFormat))
}

func TestExtract_CanceledContext(t *testing.T) {
	ex := New(fakeEngine{pages: []string{"Text"}}, nil, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ex.Extract(ctx, pdfDoc())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPDFEngine(t *testing.T) {
	engine, err := NewPDFEngine("")
	require.NoError(t, err)
	assert.IsType(t, FitzEngine{}, engine)

	engine, err = NewPDFEngine(EnginePDF)
	require.NoError(t, err)
	assert.IsType(t, PlainEngine{}, engine)

	_, err = NewPDFEngine("pdfium")
	assert.Error(t, err)
}
