package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/fadilmartias/cover-letter-assistant/internal/apperr"
	"github.com/fadilmartias/cover-letter-assistant/internal/model"
	"github.com/fadilmartias/cover-letter-assistant/internal/service"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeExtractor returns the document data as text, or a preset error per
// filename.
type fakeExtractor struct {
	errs  map[string]error
	calls []string
}

func (f *fakeExtractor) Extract(_ context.Context, doc model.Document) (string, error) {
	f.calls = append(f.calls, doc.Filename)
	if err, ok := f.errs[doc.Filename]; ok {
		return "", err
	}
	return string(doc.Data), nil
}

type fakeKeywords struct{}

func (fakeKeywords) Extract(text string) []string {
	if strings.Contains(text, "Stelle") {
		return []string{"finanzwesen", "beratung"}
	}
	return []string{"kundenberatung", "erfahrung"}
}

type fakeGenerator struct {
	mu    sync.Mutex
	reqs  []service.GenerationRequest
	reply string
	err   error
}

func (f *fakeGenerator) Generate(_ context.Context, req service.GenerationRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return f.reply, f.err
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reqs)
}

type fakeExporter struct {
	err error
}

func (f fakeExporter) Export(text string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("PK:" + text), nil
}

type memoryStore struct {
	mu    sync.Mutex
	saved map[string][]byte
	err   error
}

func (m *memoryStore) Save(_ context.Context, key, _ string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		m.saved = map[string][]byte{}
	}
	if _, exists := m.saved[key]; exists {
		return errors.New("key exists")
	}
	m.saved[key] = data
	return nil
}

var errNoText = apperr.New(apperr.KindNoText, "Kein extrahierbarer Text in der PDF-Datei.")
