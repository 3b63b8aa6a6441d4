package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Susenthrakumar/word2pdf/service"
	"github.com/gin-gonic/gin"
)

func TestDownloadHandlerSuccess(t *testing.T) {
	storage := newTestStorage(t)
	handler := NewDownloadHandler(storage)

	outputName := service.NewFileID() + "_invoice.pdf"
	if err := os.WriteFile(storage.OutputPath(outputName), []byte("%PDF-1.4 fake"), 0o644); err != nil {
		t.Fatalf("Failed to write output file: %v", err)
	}

	router := gin.New()
	router.GET("/download/:filename", handler.Download)

	req := httptest.NewRequest("GET", "/download/"+outputName, nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "invoice.pdf") {
		t.Errorf("Expected original filename in Content-Disposition, got '%s'", disposition)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Error("Expected PDF body")
	}
}

func TestDownloadHandlerInvalidName(t *testing.T) {
	storage := newTestStorage(t)
	handler := NewDownloadHandler(storage)

	router := gin.New()
	router.GET("/download/:filename", handler.Download)

	tests := []struct {
		name     string
		filename string
	}{
		{"dotdot", "1700000000_abc_..pdf..name"},
		{"not a stored name", "plain.pdf"},
		{"bad timestamp", "notanumber_abc_file.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/download/"+tt.filename, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestDownloadHandlerNotFound(t *testing.T) {
	storage := newTestStorage(t)
	handler := NewDownloadHandler(storage)

	router := gin.New()
	router.GET("/download/:filename", handler.Download)

	missing := service.NewFileID() + "_missing.pdf"
	req := httptest.NewRequest("GET", "/download/"+missing, nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
