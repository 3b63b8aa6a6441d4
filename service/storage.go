package service

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Susenthrakumar/word2pdf/config"
)

// LocalStorage manages the upload and output directories. Files are the only
// persistent state; the timestamp embedded in each name is the index.
type LocalStorage struct {
	uploadDir string
	outputDir string
}

func NewLocalStorage(cfg *config.StorageConfig) (*LocalStorage, error) {
	s := &LocalStorage{
		uploadDir: cfg.UploadDir,
		outputDir: cfg.OutputDir,
	}

	for _, dir := range []string{s.uploadDir, s.outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return s, nil
}

// UploadPath returns the full path for a stored upload name
func (s *LocalStorage) UploadPath(storedName string) string {
	return filepath.Join(s.uploadDir, storedName)
}

// OutputPath returns the full path for an output name
func (s *LocalStorage) OutputPath(outputName string) string {
	return filepath.Join(s.outputDir, outputName)
}

// OutputDir returns the output directory (needed by converters that let the
// external tool pick the output filename)
func (s *LocalStorage) OutputDir() string {
	return s.outputDir
}

// SaveUpload streams an uploaded file to disk under its stored name
func (s *LocalStorage) SaveUpload(storedName string, src io.Reader) (string, error) {
	path := s.UploadPath(storedName)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}

	return path, nil
}

// RemoveUpload deletes a stored upload, ignoring files that are already gone
func (s *LocalStorage) RemoveUpload(storedName string) {
	if err := os.Remove(s.UploadPath(storedName)); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove upload", "file", storedName, "error", err)
	}
}

// OutputExists reports whether an output file is present
func (s *LocalStorage) OutputExists(outputName string) bool {
	info, err := os.Stat(s.OutputPath(outputName))
	return err == nil && !info.IsDir()
}

// Sweep deletes files in both directories whose embedded timestamp is older
// than maxAge. Files that do not follow the naming convention are skipped.
// Returns the number of files deleted.
func (s *LocalStorage) Sweep(maxAge time.Duration) int {
	threshold := time.Now().Add(-maxAge)

	deleted := 0
	for _, dir := range []string{s.uploadDir, s.outputDir} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			slog.Warn("failed to read directory during sweep", "dir", dir, "error", err)
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			ts, err := ParseTimestamp(entry.Name())
			if err != nil {
				// Not one of ours
				continue
			}

			if ts.Before(threshold) {
				path := filepath.Join(dir, entry.Name())
				if err := os.Remove(path); err != nil {
					slog.Warn("failed to delete expired file", "file", path, "error", err)
					continue
				}
				deleted++
			}
		}
	}

	return deleted
}
