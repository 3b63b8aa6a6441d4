package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinConverterProducesPDF(t *testing.T) {
	inputPath := writeTestDocx(t, minimalDocumentXML)
	outputPath := filepath.Join(t.TempDir(), "out.pdf")

	conv := NewBuiltinConverter()
	if err := conv.Convert(context.Background(), inputPath, outputPath); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("Expected PDF magic bytes in output")
	}
}

func TestBuiltinConverterRejectsLegacyDoc(t *testing.T) {
	conv := NewBuiltinConverter()

	err := conv.Convert(context.Background(), "report.doc", "out.pdf")
	if err == nil {
		t.Fatal("Expected error for legacy .doc input")
	}
	if !strings.Contains(err.Error(), "external converter") {
		t.Errorf("Expected legacy .doc error, got: %v", err)
	}
}

func TestBuiltinConverterRejectsNonDocx(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(inputPath, []byte("not a zip"), 0o644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	conv := NewBuiltinConverter()
	err := conv.Convert(context.Background(), inputPath, filepath.Join(t.TempDir(), "out.pdf"))
	if err == nil {
		t.Fatal("Expected error for corrupt docx")
	}
}

func TestBuiltinConverterCancelledContext(t *testing.T) {
	inputPath := writeTestDocx(t, minimalDocumentXML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := NewBuiltinConverter()
	err := conv.Convert(ctx, inputPath, filepath.Join(t.TempDir(), "out.pdf"))
	if err == nil {
		t.Fatal("Expected error with cancelled context")
	}
}

func TestBuiltinConverterName(t *testing.T) {
	if NewBuiltinConverter().Name() != "builtin" {
		t.Error("Expected converter name 'builtin'")
	}
}
