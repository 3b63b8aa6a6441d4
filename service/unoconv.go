package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// UnoconvConverter converts via the unoconv CLI, a second LibreOffice-based
// tool that sometimes succeeds where a direct soffice call does not
type UnoconvConverter struct {
	runner   CommandRunner
	lookPath func(string) (string, error)
}

func NewUnoconvConverter(runner CommandRunner) *UnoconvConverter {
	return &UnoconvConverter{
		runner:   runner,
		lookPath: exec.LookPath,
	}
}

func (c *UnoconvConverter) Name() string {
	return "unoconv"
}

func (c *UnoconvConverter) Convert(ctx context.Context, inputPath, outputPath string) error {
	if _, err := c.lookPath("unoconv"); err != nil {
		return errors.New("unoconv not found, install with 'pip install unoconv' or 'apt-get install unoconv'")
	}

	_, stderr, err := c.runner.Run(ctx, "unoconv", "-f", "pdf", "-o", outputPath, inputPath)
	if err != nil {
		return fmt.Errorf("unoconv failed: %s: %w", strings.TrimSpace(stderr), err)
	}

	if _, err := os.Stat(outputPath); err != nil {
		return errors.New("conversion completed but output file not found")
	}
	return nil
}
