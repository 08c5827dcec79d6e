package extractor

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// ReadDocxParagraphs returns the text of each top-level body paragraph of a
// DOCX file. Paragraphs inside tables, text boxes and content controls are
// not part of the body flow and are skipped.
func ReadDocxParagraphs(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return parseParagraphs(doc.Editable().GetContent())
}

func parseParagraphs(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		stack      []string
		paragraphs []string
		current    strings.Builder
		inBodyPara bool
		pDepth     int
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			parent := ""
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			name := t.Name.Local
			stack = append(stack, name)

			if name == "p" {
				pDepth++
				if pDepth == 1 && parent == "body" {
					inBodyPara = true
					current.Reset()
				}
				continue
			}
			if !inBodyPara || pDepth != 1 || parent != "r" {
				continue
			}
			switch name {
			case "tab":
				current.WriteString("\t")
			case "br", "cr":
				current.WriteString("\n")
			}
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if t.Name.Local == "p" {
				pDepth--
				if pDepth == 0 && inBodyPara {
					paragraphs = append(paragraphs, current.String())
					inBodyPara = false
				}
			}
		case xml.CharData:
			n := len(stack)
			if inBodyPara && pDepth == 1 && n >= 2 && stack[n-1] == "t" && stack[n-2] == "r" {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}
