package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrLibreOfficeNotFound is returned when no soffice binary can be located
var ErrLibreOfficeNotFound = errors.New("LibreOffice executable not found")

// libreofficeCandidates are probed in order; entries may contain globs
var libreofficeCandidates = []string{
	"libreoffice",
	"soffice",
	"/usr/bin/libreoffice",
	"/usr/bin/soffice",
	"/usr/lib/libreoffice/program/soffice",
	"/opt/libreoffice*/program/soffice",
}

// LibreOfficeConverter converts via "soffice --headless --convert-to pdf".
// LibreOffice picks its own output filename (input basename with .pdf), so
// the result is renamed to the expected output path.
type LibreOfficeConverter struct {
	runner   CommandRunner
	findExec func() (string, error)
}

func NewLibreOfficeConverter(runner CommandRunner) *LibreOfficeConverter {
	return &LibreOfficeConverter{
		runner:   runner,
		findExec: FindLibreOffice,
	}
}

func (c *LibreOfficeConverter) Name() string {
	return "libreoffice"
}

func (c *LibreOfficeConverter) Convert(ctx context.Context, inputPath, outputPath string) error {
	exe, err := c.findExec()
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(outputPath)

	_, stderr, err := c.runner.Run(ctx, exe,
		"--headless",
		"--convert-to", "pdf",
		"--outdir", outputDir,
		inputPath,
	)
	if err != nil {
		return fmt.Errorf("soffice failed: %s: %w", strings.TrimSpace(stderr), err)
	}

	// LibreOffice writes {input basename}.pdf into outputDir
	base := filepath.Base(inputPath)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	produced := filepath.Join(outputDir, base+".pdf")

	if produced != outputPath {
		if err := os.Rename(produced, outputPath); err != nil {
			if _, statErr := os.Stat(outputPath); statErr == nil {
				return nil
			}
			return fmt.Errorf("conversion completed but output file not found: %w", err)
		}
		return nil
	}

	if _, err := os.Stat(outputPath); err != nil {
		return errors.New("conversion completed but output file not found")
	}
	return nil
}

// FindLibreOffice locates the LibreOffice executable on the system
func FindLibreOffice() (string, error) {
	for _, candidate := range libreofficeCandidates {
		if strings.Contains(candidate, "*") {
			matches, err := filepath.Glob(candidate)
			if err != nil {
				continue
			}
			for _, match := range matches {
				if info, err := os.Stat(match); err == nil && !info.IsDir() && info.Mode()&0o111 != 0 {
					return match, nil
				}
			}
			continue
		}

		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}

	return "", ErrLibreOfficeNotFound
}
