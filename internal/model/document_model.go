package model

import (
	"path/filepath"
	"strings"
)

const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Document is an uploaded résumé or job posting.
type Document struct {
	Filename  string
	MediaType string
	Data      []byte
}

// NormalizeMediaType strips parameters from a declared content type. Generic
// binary types fall back to the filename extension, since browsers and curl
// often send DOCX uploads as octet-stream or zip.
func NormalizeMediaType(declared, filename string) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(declared, ";")[0]))
	switch clean {
	case "", "application/octet-stream", "application/zip":
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".pdf":
			return MediaTypePDF
		case ".docx":
			return MediaTypeDOCX
		}
	}
	return clean
}
