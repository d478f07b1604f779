package analyzer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmcode/excheck/pkg/model"
	"github.com/helmcode/excheck/pkg/runner"
	"github.com/helmcode/excheck/pkg/tools"
)

type fakeRunner struct {
	out   runner.Output
	err   error
	calls [][]string
}

func (f *fakeRunner) Run(_ context.Context, argv []string) (runner.Output, error) {
	f.calls = append(f.calls, argv)
	return f.out, f.err
}

func newTestAnalyzer(t *testing.T, name tools.Name, r runner.Runner) (*Analyzer, *bytes.Buffer) {
	t.Helper()
	tool, err := tools.New(name)
	require.NoError(t, err)
	var logs bytes.Buffer
	return NewWithRunner(tool, r, slog.New(slog.NewTextHandler(&logs, nil))), &logs
}

func TestAnalyze_SuccessReturnsStdoutUnmodified(t *testing.T) {
	fr := &fakeRunner{out: runner.Output{Stdout: "  report\n\n", Stderr: "noise"}}
	a, logs := newTestAnalyzer(t, tools.NameFlake8, fr)

	res := a.Analyze(context.Background(), "/tmp/proj", "tests,build")

	assert.Equal(t, model.OutcomeSuccess, res.Outcome)
	assert.Equal(t, "  report\n\n", res.Output)
	assert.Equal(t, "flake8", res.Tool)
	require.Len(t, fr.calls, 1)
	assert.Equal(t, res.Command, fr.calls[0])
	assert.Contains(t, logs.String(), "Running Flake8.")
	assert.Contains(t, logs.String(), "--exclude tests,build")
}

func TestAnalyze_OtherErrorBecomesText(t *testing.T) {
	fr := &fakeRunner{err: errors.New("permission denied")}
	a, logs := newTestAnalyzer(t, tools.NamePylint, fr)

	res := a.Analyze(context.Background(), "pkg", "")

	assert.Equal(t, model.OutcomeError, res.Outcome)
	assert.Equal(t, "Error running Pylint: permission denied", res.Output)
	assert.Equal(t, -1, res.ExitCode)
	assert.Contains(t, logs.String(), "level=ERROR")
}

func TestAnalyze_NotFound(t *testing.T) {
	notFound := &exec.Error{Name: "pyre", Err: exec.ErrNotFound}

	a, _ := newTestAnalyzer(t, tools.NamePyreCheck, &fakeRunner{err: notFound})
	res := a.Analyze(context.Background(), "src", "a,b")
	assert.Equal(t, model.OutcomeNotFound, res.Outcome)
	assert.Equal(t, "Pyre is not installed or not in PATH. Please install Pyre.", res.Output)

	// tools without their own message fall back to the generic text
	a, _ = newTestAnalyzer(t, tools.NameBandit, &fakeRunner{err: &exec.Error{Name: "bandit", Err: exec.ErrNotFound}})
	res = a.Analyze(context.Background(), "src", "")
	assert.Equal(t, model.OutcomeNotFound, res.Outcome)
	assert.Contains(t, res.Output, "Error running Bandit: ")
	assert.Contains(t, res.Output, "executable file not found")
}

func TestAnalyze_NonZeroExitWithRealProcess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	dir := t.TempDir()
	script := "#!/bin/sh\necho 'E999 syntax error' >&2\nexit 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pylint"), []byte(script), 0o755))
	t.Setenv("PATH", dir)

	tool, err := tools.New(tools.NamePylint)
	require.NoError(t, err)
	a := NewWithRunner(tool, runner.NewExec(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	res := a.Analyze(context.Background(), "pkg", "")

	assert.Equal(t, model.OutcomeToolFailed, res.Outcome)
	assert.Equal(t, 1, res.ExitCode)
	assert.Contains(t, res.Output, "Pylint analysis failed: ")
	assert.Contains(t, res.Output, "non-zero exit status 1")
	assert.Contains(t, res.Output, "E999 syntax error")
}
