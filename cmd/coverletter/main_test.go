package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fadilmartias/cover-letter-assistant/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocument_MediaTypeFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Lebenslauf.DOCX")
	require.NoError(t, os.WriteFile(path, []byte("PK"), 0o644))

	doc, err := readDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "Lebenslauf.DOCX", doc.Filename)
	assert.Equal(t, model.MediaTypeDOCX, doc.MediaType)
	assert.Equal(t, []byte("PK"), doc.Data)
}

func TestReadDocument_Missing(t *testing.T) {
	_, err := readDocument(filepath.Join(t.TempDir(), "fehlt.pdf"))
	assert.Error(t, err)
}

func TestKeywordsCommand_RequiresFile(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"keywords"})
	defer rootCmd.SetArgs(nil)

	assert.Error(t, rootCmd.Execute())
}
