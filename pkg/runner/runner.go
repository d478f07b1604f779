// Package runner executes external analysis tools and classifies how they
// exited.
package runner

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/helmcode/excheck/pkg/model"
)

// ErrEmptyCommand is returned when Run is called without an executable.
var ErrEmptyCommand = errors.New("empty command")

// Output holds the captured streams of a finished process.
type Output struct {
	Stdout string
	Stderr string
}

// Runner runs a command to completion.
type Runner interface {
	Run(ctx context.Context, argv []string) (Output, error)
}

// Exec runs commands with os/exec, resolving argv[0] on PATH.
type Exec struct {
	// Dir is the working directory; empty means the current one.
	Dir string
}

func NewExec() *Exec {
	return &Exec{}
}

// Run blocks until the process exits. The captured streams are returned even
// when the process fails.
func (e *Exec) Run(ctx context.Context, argv []string) (Output, error) {
	if len(argv) == 0 {
		return Output{}, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = e.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return Output{Stdout: stdout.String(), Stderr: stderr.String()}, err
}

// Classify maps an error returned by Run to an Outcome.
func Classify(err error) model.Outcome {
	if err == nil {
		return model.OutcomeSuccess
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return model.OutcomeToolFailed
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return model.OutcomeNotFound
	}
	return model.OutcomeError
}

// ExitCode returns the process exit status carried by err: 0 for nil and -1
// when the process never ran or was killed.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Quote renders argv as a single shell-quoted command line.
func Quote(argv []string) string {
	return shellquote.Join(argv...)
}
