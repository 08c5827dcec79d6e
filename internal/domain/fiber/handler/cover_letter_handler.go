package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/fadilmartias/cover-letter-assistant/internal/apperr"
	"github.com/fadilmartias/cover-letter-assistant/internal/middleware"
	"github.com/fadilmartias/cover-letter-assistant/internal/model"
	"github.com/fadilmartias/cover-letter-assistant/internal/usecase"
	"github.com/fadilmartias/cover-letter-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CoverLetterHandler struct {
	uc             *usecase.CoverLetterUsecase
	maxUploadBytes int64
	logger         logrus.FieldLogger
}

func NewCoverLetterHandler(uc *usecase.CoverLetterUsecase, maxUploadBytes int64, logger logrus.FieldLogger) *CoverLetterHandler {
	return &CoverLetterHandler{uc: uc, maxUploadBytes: maxUploadBytes, logger: logger}
}

func (h *CoverLetterHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Form)
	app.Post("/generate_cover_letter", middleware.RateLimiter(10, time.Minute), h.GenerateCoverLetter)
	app.Post("/generate_docx", h.GenerateDocx)
}

type coverLetterResponse struct {
	CoverLetter string   `json:"cover_letter"`
	CVKeywords  []string `json:"cv_keywords"`
	JobKeywords []string `json:"job_keywords"`
}

type docxRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// upload describes one expected multipart file.
type upload struct {
	field      string
	missingMsg string
	formatMsg  string
	allowed    []string
}

var (
	cvUpload = upload{
		field:      "cv_file",
		missingMsg: "Bitte laden Sie einen Lebenslauf hoch.",
		formatMsg:  "Ungültiges Lebenslauf-Format: %s. Nur PDF oder DOCX erlaubt.",
		allowed:    []string{model.MediaTypePDF, model.MediaTypeDOCX},
	}
	jobUpload = upload{
		field:      "job_file",
		missingMsg: "Bitte laden Sie ein Stellenprofil hoch.",
		formatMsg:  "Ungültiges Stellenprofil-Format: %s. Nur PDF erlaubt.",
		allowed:    []string{model.MediaTypePDF},
	}
)

func (h *CoverLetterHandler) GenerateCoverLetter(c *fiber.Ctx) error {
	log := h.logger.WithField("request_id", c.Locals("requestid"))
	log.WithField("content_type", c.Get(fiber.HeaderContentType)).Debug("received /generate_cover_letter")

	cvHeader, jobHeader, err := h.uploadHeaders(c)
	if err != nil {
		log.WithError(err).Warn("rejected upload")
		return util.ErrorResponse(c, err)
	}

	profile := model.ApplicantProfile{
		Name:       c.FormValue("name"),
		Company:    c.FormValue("company"),
		Strengths:  c.FormValue("strengths"),
		Weaknesses: c.FormValue("weaknesses"),
		Tone:       c.FormValue("tone", model.DefaultTone),
	}
	log.WithFields(logrus.Fields{
		"name":    profile.Name,
		"company": profile.Company,
		"tone":    profile.Tone,
	}).Debug("form fields")

	cv, err := readDocument(cvHeader)
	if err != nil {
		return util.ErrorResponse(c, err)
	}
	job, err := readDocument(jobHeader)
	if err != nil {
		return util.ErrorResponse(c, err)
	}

	letter, err := h.uc.Generate(c.UserContext(), cv, job, profile)
	if err != nil {
		log.WithError(err).WithField("kind", apperr.KindOf(err)).Error("cover letter request failed")
		return util.ErrorResponse(c, err)
	}

	log.Debug("cover letter generated")
	return c.JSON(coverLetterResponse{
		CoverLetter: letter.Text,
		CVKeywords:  letter.CVKeywords,
		JobKeywords: letter.JobKeywords,
	})
}

// uploadHeaders checks presence, media type and size of both files, in that
// order across both files.
func (h *CoverLetterHandler) uploadHeaders(c *fiber.Ctx) (*multipart.FileHeader, *multipart.FileHeader, error) {
	uploads := []upload{cvUpload, jobUpload}
	headers := make([]*multipart.FileHeader, len(uploads))

	for i, u := range uploads {
		fh, err := c.FormFile(u.field)
		if err != nil || fh == nil {
			return nil, nil, apperr.NewFormError(u.missingMsg, map[string]string{u.field: "required"})
		}
		headers[i] = fh
	}

	for i, u := range uploads {
		fh := headers[i]
		mediaType := model.NormalizeMediaType(fh.Header.Get(fiber.HeaderContentType), fh.Filename)
		h.logger.WithFields(logrus.Fields{
			"field":      u.field,
			"file":       fh.Filename,
			"media_type": mediaType,
			"size":       fh.Size,
		}).Debug("uploaded file")
		if !contains(u.allowed, mediaType) {
			return nil, nil, apperr.New(apperr.KindUnsupportedFormat, fmt.Sprintf(u.formatMsg, mediaType))
		}
	}

	for i, u := range uploads {
		if headers[i].Size > h.maxUploadBytes {
			return nil, nil, apperr.NewFormError(
				fmt.Sprintf("Die Datei %s ist zu groß (maximal %d MB).", headers[i].Filename, h.maxUploadBytes>>20),
				map[string]string{u.field: "max_size"})
		}
	}

	return headers[0], headers[1], nil
}

func readDocument(fh *multipart.FileHeader) (model.Document, error) {
	f, err := fh.Open()
	if err != nil {
		return model.Document{}, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return model.Document{}, fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}
	return model.Document{
		Filename:  fh.Filename,
		MediaType: model.NormalizeMediaType(fh.Header.Get(fiber.HeaderContentType), fh.Filename),
		Data:      data,
	}, nil
}

func (h *CoverLetterHandler) GenerateDocx(c *fiber.Ctx) error {
	h.logger.Debug("received /generate_docx")

	var req docxRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, apperr.Wrap(apperr.KindInvalidInput, usecase.MsgNoLetter, err))
	}

	doc, err := h.uc.Export(c.UserContext(), req.CoverLetter)
	if err != nil {
		return util.ErrorResponse(c, err)
	}

	c.Set("X-Export-Key", doc.Key)
	c.Attachment(doc.Filename)
	c.Set(fiber.HeaderContentType, doc.ContentType)
	return c.Send(doc.Data)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
