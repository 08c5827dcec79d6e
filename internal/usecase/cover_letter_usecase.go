package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fadilmartias/cover-letter-assistant/internal/apperr"
	"github.com/fadilmartias/cover-letter-assistant/internal/exporter"
	"github.com/fadilmartias/cover-letter-assistant/internal/model"
	"github.com/fadilmartias/cover-letter-assistant/internal/service"
	"github.com/fadilmartias/cover-letter-assistant/internal/storage"
	"github.com/fadilmartias/cover-letter-assistant/internal/validation"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	MsgAllFieldsRequired = "Alle Felder müssen ausgefüllt sein."
	MsgNoLetter          = "Kein Motivationsschreiben angegeben."
	msgStorageFailed     = "Fehler beim Speichern der DOCX-Datei"
	msgExportFailed      = "Fehler beim Generieren der DOCX"
)

type TextExtractor interface {
	Extract(ctx context.Context, doc model.Document) (string, error)
}

type KeywordExtractor interface {
	Extract(text string) []string
}

type DocumentExporter interface {
	Export(text string) ([]byte, error)
}

// GenerationSettings are the model parameters sent with every request.
type GenerationSettings struct {
	MaxTokens   int
	Temperature float32
	TargetRole  string
}

type CoverLetterDeps struct {
	Extractor TextExtractor
	Keywords  KeywordExtractor
	Generator service.CoverLetterGenerator
	Exporter  DocumentExporter
	Store     storage.ArtifactStore
	Validator *validation.ProfileValidator
	Settings  GenerationSettings
	Logger    logrus.FieldLogger
}

type CoverLetterUsecase struct {
	extractor TextExtractor
	keywords  KeywordExtractor
	generator service.CoverLetterGenerator
	exporter  DocumentExporter
	store     storage.ArtifactStore
	validator *validation.ProfileValidator
	settings  GenerationSettings
	logger    logrus.FieldLogger
	newKey    func() string
}

func NewCoverLetterUsecase(deps CoverLetterDeps) *CoverLetterUsecase {
	if deps.Validator == nil {
		deps.Validator = validation.NewProfileValidator()
	}
	if deps.Settings.TargetRole == "" {
		deps.Settings.TargetRole = "Bankkauffrau/-mann"
	}
	return &CoverLetterUsecase{
		extractor: deps.Extractor,
		keywords:  deps.Keywords,
		generator: deps.Generator,
		exporter:  deps.Exporter,
		store:     deps.Store,
		validator: deps.Validator,
		settings:  deps.Settings,
		logger:    deps.Logger,
		newKey:    func() string { return "exports/" + uuid.NewString() + ".docx" },
	}
}

// ComposeInput is everything a letter is written from.
type ComposeInput struct {
	CVText  string
	JobText string
	Profile model.ApplicantProfile
}

// Compose writes a letter from already extracted texts. The generator is
// only called when every input is present and the profile validates.
func (uc *CoverLetterUsecase) Compose(ctx context.Context, in ComposeInput) (*model.CoverLetter, error) {
	if strings.TrimSpace(in.CVText) == "" || strings.TrimSpace(in.JobText) == "" {
		fields := map[string]string{}
		if strings.TrimSpace(in.CVText) == "" {
			fields["cv_text"] = "required"
		}
		if strings.TrimSpace(in.JobText) == "" {
			fields["job_text"] = "required"
		}
		return nil, apperr.NewFormError(MsgAllFieldsRequired, fields)
	}
	if err := uc.validator.Validate(in.Profile); err != nil {
		return nil, err
	}

	cvKeywords := uc.keywords.Extract(in.CVText)
	jobKeywords := uc.keywords.Extract(in.JobText)
	tone := in.Profile.ToneOrDefault()

	prompt := buildPrompt(promptData{
		Tone:        tone,
		Name:        in.Profile.Name,
		Company:     in.Profile.Company,
		Role:        uc.settings.TargetRole,
		CVText:      in.CVText,
		JobText:     in.JobText,
		CVKeywords:  cvKeywords,
		JobKeywords: jobKeywords,
		Strengths:   in.Profile.Strengths,
		Weaknesses:  in.Profile.Weaknesses,
	})

	log := uc.logger.WithFields(logrus.Fields{
		"tone":         tone,
		"cv_keywords":  cvKeywords,
		"job_keywords": jobKeywords,
	})
	log.Debug("generating cover letter")
	start := time.Now()

	text, err := uc.generator.Generate(ctx, service.GenerationRequest{
		System:      SystemPrompt,
		Prompt:      prompt,
		MaxTokens:   uc.settings.MaxTokens,
		Temperature: uc.settings.Temperature,
	})
	if err != nil {
		log.WithError(err).Error("cover letter generation failed")
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.KindGeneration, "Fehler bei der Erstellung des Motivationsschreibens", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.New(apperr.KindGeneration, "Leere Antwort bei der Erstellung des Motivationsschreibens")
	}
	log.WithField("duration", time.Since(start).String()).Debug("cover letter generated")

	return &model.CoverLetter{
		Text:        text,
		CVKeywords:  cvKeywords,
		JobKeywords: jobKeywords,
	}, nil
}

// Generate validates the profile, extracts both documents and composes the
// letter. Field errors are reported before any document is parsed.
func (uc *CoverLetterUsecase) Generate(ctx context.Context, cv, job model.Document, profile model.ApplicantProfile) (*model.CoverLetter, error) {
	if err := uc.validator.Validate(profile); err != nil {
		return nil, err
	}

	cvText, err := uc.extractor.Extract(ctx, cv)
	if err != nil {
		return nil, relabel(err, "Fehler beim Verarbeiten des Lebenslaufs")
	}
	jobText, err := uc.extractor.Extract(ctx, job)
	if err != nil {
		return nil, relabel(err, "Fehler beim Verarbeiten des Stellenprofils")
	}

	return uc.Compose(ctx, ComposeInput{CVText: cvText, JobText: jobText, Profile: profile})
}

// Export renders the letter to DOCX and stores it under a fresh key.
func (uc *CoverLetterUsecase) Export(ctx context.Context, letter string) (*model.ExportedDocument, error) {
	if strings.TrimSpace(letter) == "" {
		return nil, apperr.NewFormError(MsgNoLetter, map[string]string{"cover_letter": "required"})
	}

	data, err := uc.exporter.Export(letter)
	if err != nil {
		uc.logger.WithError(err).Error("docx export failed")
		return nil, apperr.Wrap(apperr.KindStorage, msgExportFailed, err)
	}

	key := uc.newKey()
	if err := uc.store.Save(ctx, key, exporter.ContentType, data); err != nil {
		uc.logger.WithError(err).WithField("key", key).Error("storing docx failed")
		return nil, apperr.Wrap(apperr.KindStorage, msgStorageFailed, err)
	}
	uc.logger.WithFields(logrus.Fields{"key": key, "size": len(data)}).Debug("docx stored")

	return &model.ExportedDocument{
		Key:         key,
		Filename:    exporter.Filename,
		ContentType: exporter.ContentType,
		Data:        data,
	}, nil
}

// relabel prefixes the user-facing message of an extraction failure with the
// document it came from, keeping its kind.
func relabel(err error, prefix string) error {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		return apperr.Wrap(apperr.KindInternal, prefix, err)
	}
	return &apperr.Error{
		Kind:    appErr.Kind,
		Message: prefix + ": " + appErr.Message,
		Fields:  appErr.Fields,
		Err:     appErr.Err,
	}
}
