package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// CommandRunner abstracts command execution so converters can be tested
// without the real tools installed
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec. The context carries the
// per-invocation timeout; an expired context kills the subprocess.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("%s timed out: %w", name, ctx.Err())
	}

	return stdout.String(), stderr.String(), err
}
