package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fadilmartias/cover-letter-assistant/internal/model"
)

// readDocument loads a local file, deriving its media type from the extension.
func readDocument(path string) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	name := filepath.Base(path)
	return model.Document{
		Filename:  name,
		MediaType: model.NormalizeMediaType("", name),
		Data:      data,
	}, nil
}
