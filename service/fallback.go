package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// BuiltinConverter is the last resort: it extracts the paragraph text from
// the docx archive and renders a plain text-only PDF in process. Formatting,
// images and tables are lost; the result is readable, not faithful.
type BuiltinConverter struct{}

func NewBuiltinConverter() *BuiltinConverter {
	return &BuiltinConverter{}
}

func (c *BuiltinConverter) Name() string {
	return "builtin"
}

func (c *BuiltinConverter) Convert(ctx context.Context, inputPath, outputPath string) error {
	if !strings.HasSuffix(strings.ToLower(inputPath), ".docx") {
		return errors.New("legacy .doc files require an external converter")
	}

	paragraphs, err := ExtractDocxText(inputPath)
	if err != nil {
		return err
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)

	// Core fonts are cp1252; translate what we can, drop the rest
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, para := range paragraphs {
		if strings.TrimSpace(para) == "" {
			pdf.Ln(5)
			continue
		}
		pdf.MultiCell(0, 5, tr(para), "", "L", false)
		pdf.Ln(2)
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
