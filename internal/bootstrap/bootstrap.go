package bootstrap

import (
	"context"
	"fmt"

	"github.com/fadilmartias/cover-letter-assistant/internal/config"
	"github.com/fadilmartias/cover-letter-assistant/internal/exporter"
	"github.com/fadilmartias/cover-letter-assistant/internal/extractor"
	"github.com/fadilmartias/cover-letter-assistant/internal/keywords"
	"github.com/fadilmartias/cover-letter-assistant/internal/nlp"
	"github.com/fadilmartias/cover-letter-assistant/internal/service"
	"github.com/fadilmartias/cover-letter-assistant/internal/storage"
	"github.com/fadilmartias/cover-letter-assistant/internal/usecase"
	"github.com/fadilmartias/cover-letter-assistant/internal/validation"
	"github.com/sirupsen/logrus"
)

// App holds the components shared by the HTTP server and the CLI.
type App struct {
	Extractor *extractor.Extractor
	Keywords  *keywords.Extractor
	Usecase   *usecase.CoverLetterUsecase
}

// NewExtraction builds the text and keyword extractors. It needs no
// credentials, so the keywords command can use it on its own.
func NewExtraction(ctx context.Context, cfg *config.ExtractionConfig, logger logrus.FieldLogger) (*extractor.Extractor, *keywords.Extractor, error) {
	engine, err := extractor.NewPDFEngine(cfg.PDFEngine)
	if err != nil {
		return nil, nil, err
	}

	var ocr *extractor.OCR
	if cfg.OCRFallback {
		ocr = extractor.NewOCR(cfg.OCRLanguage, logger)
		if err := ocr.CheckTesseract(ctx); err != nil {
			return nil, nil, fmt.Errorf("PDF_OCR_FALLBACK is enabled: %w", err)
		}
	}

	lexicon := keywords.DefaultLexicon()
	if cfg.LexiconPath != "" {
		lexicon, err = keywords.LoadLexicon(cfg.LexiconPath)
		if err != nil {
			return nil, nil, err
		}
	}

	return extractor.New(engine, ocr, logger), keywords.NewExtractor(nlp.NewGermanTagger(), lexicon), nil
}

// New wires every component from the loaded configuration. Missing
// credentials or an unreadable lexicon are returned as errors for the caller
// to treat as fatal.
func New(ctx context.Context, logger logrus.FieldLogger) (*App, error) {
	textExtractor, keywordExtractor, err := NewExtraction(ctx, config.LoadExtractionConfig(), logger)
	if err != nil {
		return nil, err
	}

	genCfg := config.LoadGenerationConfig()
	generator, err := service.NewGenerator(ctx, genCfg, config.LoadOpenAIConfig(), config.LoadGeminiConfig(), logger)
	if err != nil {
		return nil, err
	}

	store, err := storage.New(ctx, config.LoadStorageConfig())
	if err != nil {
		return nil, fmt.Errorf("export store: %w", err)
	}

	uc := usecase.NewCoverLetterUsecase(usecase.CoverLetterDeps{
		Extractor: textExtractor,
		Keywords:  keywordExtractor,
		Generator: generator,
		Exporter:  exporter.NewDocxExporter(),
		Store:     store,
		Validator: validation.NewProfileValidator(),
		Settings: usecase.GenerationSettings{
			MaxTokens:   genCfg.MaxTokens,
			Temperature: genCfg.Temperature,
			TargetRole:  genCfg.TargetRole,
		},
		Logger: logger,
	})

	return &App{Extractor: textExtractor, Keywords: keywordExtractor, Usecase: uc}, nil
}
