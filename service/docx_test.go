package service

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
    <w:p/>
    <w:p>
      <w:r><w:t>Split </w:t></w:r>
      <w:r><w:t>across runs</w:t></w:r>
    </w:p>
    <w:p><w:r><w:t>Before</w:t><w:br/><w:t>after break</w:t></w:r></w:p>
  </w:body>
</w:document>`

// writeTestDocx builds a minimal docx archive on disk
func writeTestDocx(t *testing.T, documentXML string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create docx: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("Failed to add document.xml: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("Failed to write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}

	return path
}

func TestExtractDocxText(t *testing.T) {
	path := writeTestDocx(t, minimalDocumentXML)

	paragraphs, err := ExtractDocxText(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []string{
		"First paragraph",
		"",
		"Split across runs",
		"Before\nafter break",
	}

	if len(paragraphs) != len(expected) {
		t.Fatalf("Expected %d paragraphs, got %d: %q", len(expected), len(paragraphs), paragraphs)
	}
	for i, want := range expected {
		if paragraphs[i] != want {
			t.Errorf("Paragraph %d: expected %q, got %q", i, want, paragraphs[i])
		}
	}
}

func TestExtractDocxTextNotZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a.docx")
	if err := os.WriteFile(path, []byte("plain text, not a zip"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := ExtractDocxText(path)
	if err == nil {
		t.Fatal("Expected error for non-zip input")
	}
}

func TestExtractDocxTextMissingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	zw := zip.NewWriter(f)
	w, _ := zw.Create("word/styles.xml")
	w.Write([]byte("<styles/>"))
	zw.Close()
	f.Close()

	_, err = ExtractDocxText(path)
	if err == nil || !strings.Contains(err.Error(), "document.xml") {
		t.Errorf("Expected missing document.xml error, got: %v", err)
	}
}

func TestParseDocumentXMLTabs(t *testing.T) {
	xml := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t></w:r></w:p>
  </w:body>
</w:document>`

	paragraphs, err := parseDocumentXML(strings.NewReader(xml))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(paragraphs) != 1 || paragraphs[0] != "a\tb" {
		t.Errorf("Expected tab preserved, got %q", paragraphs)
	}
}

func TestParseDocumentXMLMalformed(t *testing.T) {
	_, err := parseDocumentXML(strings.NewReader("<w:document><unclosed"))
	if err == nil {
		t.Error("Expected error for malformed XML")
	}
}
