// Package config resolves the run configuration from defaults, an optional
// YAML file, EXCHECK_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
	"k8s.io/client-go/util/homedir"

	"github.com/helmcode/excheck/pkg/formatter"
	"github.com/helmcode/excheck/pkg/logging"
	"github.com/helmcode/excheck/pkg/tools"
)

// DefaultFileName is looked up in the user's home directory.
const DefaultFileName = ".excheck.yaml"

// ErrPathNotFound is returned by CheckPath for targets that do not exist.
var ErrPathNotFound = errors.New("path not found")

// Config is the resolved configuration of a single run.
type Config struct {
	Path       string
	ReportFile string
	Exclude    string
	Tool       tools.Name
	Format     string
	LogLevel   string
	Quiet      bool
}

// Values holds settings from one source. Empty strings and a nil Quiet mean
// the source does not set the value.
type Values struct {
	Tool       string `yaml:"tool"`
	Exclude    string `yaml:"exclude"`
	ReportFile string `yaml:"report_file"`
	Format     string `yaml:"format"`
	LogLevel   string `yaml:"log_level"`
	Quiet      *bool  `yaml:"quiet"`
}

// Defaults returns the built-in settings.
func Defaults() Values {
	quiet := false
	return Values{
		Tool:     string(tools.NameBandit),
		Format:   formatter.FormatRaw,
		LogLevel: "info",
		Quiet:    &quiet,
	}
}

// FromEnv reads EXCHECK_* variables through lookup, typically os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Values, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	v := Values{
		Tool:       get("EXCHECK_TOOL"),
		Exclude:    get("EXCHECK_EXCLUDE"),
		ReportFile: get("EXCHECK_REPORT_FILE"),
		Format:     get("EXCHECK_FORMAT"),
		LogLevel:   get("EXCHECK_LOG_LEVEL"),
	}
	if raw := get("EXCHECK_QUIET"); raw != "" {
		q, err := strconv.ParseBool(raw)
		if err != nil {
			return Values{}, fmt.Errorf("invalid EXCHECK_QUIET %q: %w", raw, err)
		}
		v.Quiet = &q
	}
	return v, nil
}

// DefaultFilePath returns ~/.excheck.yaml, or "" when there is no home directory.
func DefaultFilePath() string {
	home := homedir.HomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}

// LoadFile reads settings from a YAML file. A missing file is an error only
// when required is set.
func LoadFile(path string, required bool) (Values, error) {
	if path == "" {
		return Values{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return Values{}, nil
		}
		return Values{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var v Values
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Values{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	slog.Debug("Config file loaded.", "path", path)
	return v, nil
}

// Resolve merges layers, lowest precedence first, and validates the result.
// Only the tool, format and log level are validated; exclude entries are
// passed through to the tool as given.
func Resolve(path string, layers ...Values) (*Config, error) {
	var merged Values
	for _, l := range layers {
		merged = merged.merge(l)
	}

	name, err := tools.ParseName(merged.Tool)
	if err != nil {
		return nil, err
	}
	format, err := formatter.ParseFormat(merged.Format)
	if err != nil {
		return nil, err
	}
	if _, err := logging.ParseLevel(merged.LogLevel); err != nil {
		return nil, err
	}

	cfg := &Config{
		Path:       path,
		ReportFile: merged.ReportFile,
		Exclude:    merged.Exclude,
		Tool:       name,
		Format:     format,
		LogLevel:   merged.LogLevel,
	}
	if merged.Quiet != nil {
		cfg.Quiet = *merged.Quiet
	}
	return cfg, nil
}

func (v Values) merge(over Values) Values {
	if over.Tool != "" {
		v.Tool = over.Tool
	}
	if over.Exclude != "" {
		v.Exclude = over.Exclude
	}
	if over.ReportFile != "" {
		v.ReportFile = over.ReportFile
	}
	if over.Format != "" {
		v.Format = over.Format
	}
	if over.LogLevel != "" {
		v.LogLevel = over.LogLevel
	}
	if over.Quiet != nil {
		v.Quiet = over.Quiet
	}
	return v
}

// CheckPath fails with ErrPathNotFound when path cannot be stat'ed. Files and
// directories are both accepted.
func CheckPath(path string) error {
	if _, err := os.Stat(path); err != nil {
		slog.Error(fmt.Sprintf("Error: Path '%s' does not exist.", path))
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	return nil
}
