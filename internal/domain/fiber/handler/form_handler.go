package handler

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/fadilmartias/cover-letter-assistant/internal/model"
	"github.com/gofiber/fiber/v2"
)

//go:embed web/form.html
var formHTML string

var formTemplate = template.Must(template.New("form").Parse(formHTML))

type formData struct {
	Name        string
	Company     string
	Tones       []string
	DefaultTone string
}

// Form serves the interactive page that posts to both API endpoints.
func (h *CoverLetterHandler) Form(c *fiber.Ctx) error {
	var buf bytes.Buffer
	err := formTemplate.Execute(&buf, formData{
		Name:        "Max Mustermann",
		Company:     "Beispiel GmbH",
		Tones:       model.Tones,
		DefaultTone: model.DefaultTone,
	})
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
