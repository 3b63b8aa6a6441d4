package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Converter turns a Word document on disk into a PDF at outputPath.
// Implementations report failure when their tool is missing so the chain can
// move on to the next one.
type Converter interface {
	Name() string
	Convert(ctx context.Context, inputPath, outputPath string) error
}

// Chain tries each converter in a fixed priority order, stopping at the
// first success. No backoff, no health tracking; the order is the policy.
type Chain struct {
	converters []Converter
	timeout    time.Duration
}

func NewChain(timeout time.Duration, converters ...Converter) *Chain {
	return &Chain{
		converters: converters,
		timeout:    timeout,
	}
}

// Convert runs the fallback chain. On success it returns the name of the
// converter that produced the PDF. On total failure the error message joins
// every attempt's failure reason.
func (c *Chain) Convert(ctx context.Context, inputPath, outputPath string) (string, error) {
	if len(c.converters) == 0 {
		return "", errors.New("no converters configured")
	}

	var failures []string
	for _, conv := range c.converters {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := conv.Convert(attemptCtx, inputPath, outputPath)
		cancel()

		if err == nil {
			slog.Info("conversion succeeded", "converter", conv.Name(), "output", outputPath)
			return conv.Name(), nil
		}

		slog.Warn("conversion attempt failed", "converter", conv.Name(), "error", err)
		failures = append(failures, fmt.Sprintf("%s conversion failed: %v", conv.Name(), err))

		if ctx.Err() != nil {
			// Request itself was cancelled, no point trying the rest
			break
		}
	}

	return "", errors.New("all conversion methods failed: " + strings.Join(failures, " | "))
}

// Names lists the configured converters in priority order
func (c *Chain) Names() []string {
	names := make([]string, len(c.converters))
	for i, conv := range c.converters {
		names[i] = conv.Name()
	}
	return names
}
