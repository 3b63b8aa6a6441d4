package service

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// A .docx file is a zip archive; the body text lives in word/document.xml.
// ExtractDocxText pulls the paragraph text out without any layout
// information, which is all the built-in fallback renderer needs.

var ErrNotDocx = errors.New("file is not a docx archive")

// ExtractDocxText returns the document's paragraphs in order. Empty
// paragraphs are preserved so the renderer can keep vertical spacing.
func ExtractDocxText(path string) ([]string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, errors.New("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open document.xml: %w", err)
	}
	defer rc.Close()

	return parseDocumentXML(rc)
}

// parseDocumentXML walks the WordprocessingML token stream collecting the
// character data inside <w:t> runs, flushing a paragraph at each </w:p>
func parseDocumentXML(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
		inBody     bool
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document.xml: %w", err)
		}

		switch el := token.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "body":
				inBody = true
			case "t":
				inText = true
			case "br", "cr":
				current.WriteByte('\n')
			case "tab":
				current.WriteByte('\t')
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				if inBody {
					paragraphs = append(paragraphs, current.String())
					current.Reset()
				}
			}
		case xml.CharData:
			if inText {
				current.Write(el)
			}
		}
	}

	return paragraphs, nil
}
