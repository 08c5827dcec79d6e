package exporter

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

const (
	Heading     = "Motivationsschreiben"
	Filename    = "Motivationsschreiben.docx"
	ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	headingPlaceholder = "{{heading}}"
	bodyPlaceholder    = `<w:p><w:r><w:t>{{body}}</w:t></w:r></w:p>`
)

//go:embed template/template.docx
var defaultTemplate []byte

// DocxExporter renders letter text into a DOCX built from a template that
// carries the page setup and a Heading1 style.
type DocxExporter struct {
	template []byte
	heading  string
}

func NewDocxExporter() *DocxExporter {
	return &DocxExporter{template: defaultTemplate, heading: Heading}
}

// Export writes the heading followed by one paragraph per blank-line
// separated chunk of text. Chunks are trimmed and empty chunks dropped.
func (e *DocxExporter) Export(text string) ([]byte, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(e.template), int64(len(e.template)))
	if err != nil {
		return nil, fmt.Errorf("failed to open docx template: %w", err)
	}
	defer doc.Close()

	editable := doc.Editable()
	content := editable.GetContent()
	if !strings.Contains(content, bodyPlaceholder) || !strings.Contains(content, headingPlaceholder) {
		return nil, fmt.Errorf("docx template is missing placeholders")
	}

	var body strings.Builder
	for _, chunk := range Paragraphs(text) {
		body.WriteString(paragraphXML(chunk))
	}

	content = strings.Replace(content, headingPlaceholder, escape(e.heading), 1)
	content = strings.Replace(content, bodyPlaceholder, body.String(), 1)
	editable.SetContent(content)

	var buf bytes.Buffer
	if err := editable.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write docx: %w", err)
	}
	return buf.Bytes(), nil
}

// Paragraphs splits letter text into the paragraphs written to the document.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var out []string
	for _, chunk := range strings.Split(text, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}

// paragraphXML emits a single w:p. Line breaks and tabs inside a paragraph
// become w:br and w:tab runs.
func paragraphXML(text string) string {
	var b strings.Builder
	b.WriteString("<w:p><w:r>")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString("<w:br/>")
		}
		for j, part := range strings.Split(line, "\t") {
			if j > 0 {
				b.WriteString("<w:tab/>")
			}
			if part != "" {
				b.WriteString(`<w:t xml:space="preserve">`)
				b.WriteString(escape(part))
				b.WriteString("</w:t>")
			}
		}
	}
	b.WriteString("</w:r></w:p>")
	return b.String()
}

func escape(s string) string {
	var b strings.Builder
	// EscapeText only fails when the writer does
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
