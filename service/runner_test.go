package service

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestExecRunnerCapturesStdout(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	runner := &ExecRunner{}
	stdout, _, err := runner.Run(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.TrimSpace(stdout) != "hello" {
		t.Errorf("Expected 'hello', got '%s'", stdout)
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	runner := &ExecRunner{}
	_, _, err := runner.Run(context.Background(), "definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Error("Expected error for missing binary")
	}
}

func TestExecRunnerTimeout(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}

	runner := &ExecRunner{}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := runner.Run(ctx, "sleep", "5")
	if err == nil {
		t.Fatal("Expected timeout error")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("Expected timeout in error message, got: %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("Expected the subprocess to be killed promptly")
	}
}
