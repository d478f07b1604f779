package analyzer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/helmcode/excheck/pkg/model"
	"github.com/helmcode/excheck/pkg/runner"
	"github.com/helmcode/excheck/pkg/tools"
)

// Analyzer runs one tool and turns every way the run can end into text.
type Analyzer struct {
	tool   tools.Tool
	runner runner.Runner
	logger *slog.Logger
}

func New(tool tools.Tool) *Analyzer {
	return NewWithRunner(tool, runner.NewExec(), nil)
}

// NewWithRunner uses r to execute commands. A nil logger means slog.Default().
func NewWithRunner(tool tools.Tool, r runner.Runner, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{tool: tool, runner: r, logger: logger}
}

// Analyze runs the tool against path. It never fails: tool errors, a missing
// executable and unexpected errors are all reported through Result.Output.
func (a *Analyzer) Analyze(ctx context.Context, path, exclude string) *model.Result {
	name := a.tool.DisplayName()
	command := a.tool.BuildCommand(path, exclude)
	a.logger.Info("Running "+name+".", "command", runner.Quote(command))

	out, err := a.runner.Run(ctx, command)
	result := &model.Result{
		Tool:     string(a.tool.Name()),
		Command:  command,
		Outcome:  runner.Classify(err),
		ExitCode: runner.ExitCode(err),
	}

	switch result.Outcome {
	case model.OutcomeSuccess:
		result.Output = out.Stdout

	case model.OutcomeToolFailed:
		reason := fmt.Sprintf("command %s returned non-zero exit status %d", runner.Quote(command), result.ExitCode)
		a.logger.Error(name+" analysis failed.", "error", reason)
		result.Output = fmt.Sprintf("%s analysis failed: %s\n%s", name, reason, out.Stderr)

	case model.OutcomeNotFound:
		if r, ok := a.tool.(tools.NotFoundReporter); ok {
			msg := r.NotFoundMessage()
			a.logger.Error(msg)
			result.Output = msg
			break
		}
		fallthrough

	default:
		a.logger.Error("Error running "+name+".", "error", err)
		result.Output = fmt.Sprintf("Error running %s: %v", name, err)
	}

	return result
}
