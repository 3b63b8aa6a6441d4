package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// PandocConverter converts docx via pandoc. Pandoc needs a PDF engine
// (pdflatex, wkhtmltopdf, ...) to emit PDF; when none is installed the
// invocation fails cheaply and the chain moves on.
type PandocConverter struct {
	runner   CommandRunner
	lookPath func(string) (string, error)
}

func NewPandocConverter(runner CommandRunner) *PandocConverter {
	return &PandocConverter{
		runner:   runner,
		lookPath: exec.LookPath,
	}
}

func (c *PandocConverter) Name() string {
	return "pandoc"
}

func (c *PandocConverter) Convert(ctx context.Context, inputPath, outputPath string) error {
	if _, err := c.lookPath("pandoc"); err != nil {
		return errors.New("pandoc not found")
	}

	_, stderr, err := c.runner.Run(ctx, "pandoc", inputPath, "-o", outputPath)
	if err != nil {
		return fmt.Errorf("pandoc failed: %s: %w", strings.TrimSpace(stderr), err)
	}

	if _, err := os.Stat(outputPath); err != nil {
		return errors.New("conversion completed but output file not found")
	}
	return nil
}
