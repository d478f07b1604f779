package formatter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/helmcode/excheck/pkg/model"
	"gopkg.in/yaml.v3"
)

const (
	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalidFormat is returned for output formats other than raw, json and yaml.
var ErrInvalidFormat = errors.New("invalid output format")

// ParseFormat validates an output format name.
func ParseFormat(format string) (string, error) {
	switch f := strings.ToLower(format); f {
	case FormatRaw, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (supported: raw, json, yaml)", ErrInvalidFormat, format)
	}
}

// Render formats the result. The raw format is the tool output untouched.
func Render(result *model.Result, format string) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(result)
	case FormatYAML:
		return renderYAML(result)
	case FormatRaw, "":
		return result.Output, nil
	default:
		return "", fmt.Errorf("%w %q", ErrInvalidFormat, format)
	}
}

// WriteReport writes the rendered result to reportFile, truncating it, or to
// stdout when reportFile is empty.
func WriteReport(result *model.Result, format, reportFile string, stdout io.Writer) error {
	text, err := Render(result, format)
	if err != nil {
		return err
	}

	if reportFile == "" {
		_, err := fmt.Fprintln(stdout, text)
		return err
	}

	if err := os.WriteFile(reportFile, []byte(text), 0o644); err != nil {
		slog.Error("Error writing to report file.", "file", reportFile, "error", err)
		return fmt.Errorf("write report file: %w", err)
	}
	slog.Info("Report saved.", "file", reportFile)
	return nil
}

func renderJSON(result *model.Result) (string, error) {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(output), nil
}

func renderYAML(result *model.Result) (string, error) {
	output, err := yaml.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(output), nil
}
