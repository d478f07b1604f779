package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/helmcode/excheck/pkg/analyzer"
	"github.com/helmcode/excheck/pkg/config"
	"github.com/helmcode/excheck/pkg/formatter"
	"github.com/helmcode/excheck/pkg/logging"
	"github.com/helmcode/excheck/pkg/tools"
	"github.com/spf13/cobra"
)

type options struct {
	reportFile string
	exclude    string
	tool       string
	configFile string
	format     string
	logLevel   string
	quiet      bool
}

func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "excheck PATH",
		Short: "Run a Python static analysis tool over a file or directory",
		Long: `excheck runs one of bandit, flake8, pylint or pyre-check against a Python
file or directory, tuned for finding improper exception handling, and writes
the tool's report to a file or stdout.

Examples:
  # Scan a project with bandit (the default)
  excheck ./src

  # Lint with flake8, skipping tests and build output
  excheck ./src --tool flake8 --exclude tests,build

  # Save a pylint report
  excheck app.py --tool pylint --report_file pylint.txt`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args[0])
		},
	}

	// Disable automatic 'completion' command added by cobra
	cmd.CompletionOptions.DisableDefaultCmd = true

	// Flags
	cmd.Flags().StringVar(&opts.reportFile, "report_file", "", "Path to save the report. If not provided, output goes to stdout")
	cmd.Flags().StringVar(&opts.exclude, "exclude", "", "Comma-separated list of files or directories to exclude from analysis")
	cmd.Flags().StringVar(&opts.tool, "tool", string(tools.NameBandit), fmt.Sprintf("Static analysis tool to use (%s)", strings.Join(tools.NameStrings(), ", ")))
	cmd.Flags().StringVar(&opts.configFile, "config", "", fmt.Sprintf("Path to a YAML config file (default ~/%s if present)", config.DefaultFileName))
	cmd.Flags().StringVarP(&opts.format, "output", "o", formatter.FormatRaw, "Report format (raw, json, yaml)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", fmt.Sprintf("Log level (%s)", strings.Join(logging.Levels, ", ")))
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Disable the progress spinner and status lines")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *options, path string) error {
	cfg, err := resolveConfig(cmd, opts, path)
	if err != nil {
		return err
	}
	// Past this point errors are not usage errors
	cmd.SilenceUsage = true

	stderr := cmd.ErrOrStderr()
	if _, err := logging.Setup(cfg.LogLevel, stderr); err != nil {
		return err
	}

	if err := config.CheckPath(cfg.Path); err != nil {
		return err
	}

	tool, err := tools.New(cfg.Tool)
	if err != nil {
		return err
	}

	stop := startSpinner(stderr, fmt.Sprintf(" Running %s...", tool.DisplayName()), cfg.Quiet)
	result := analyzer.New(tool).Analyze(cmd.Context(), cfg.Path, cfg.Exclude)
	stop()

	if !cfg.Quiet {
		if result.Failed() {
			printError(stderr, fmt.Sprintf("%s did not complete (%s)", tool.DisplayName(), result.Outcome))
		} else {
			printSuccess(stderr, fmt.Sprintf("%s analysis complete", tool.DisplayName()))
		}
	}

	return formatter.WriteReport(result, cfg.Format, cfg.ReportFile, cmd.OutOrStdout())
}

// resolveConfig layers defaults, the config file, EXCHECK_* variables and
// the flags that were set explicitly.
func resolveConfig(cmd *cobra.Command, opts *options, path string) (*config.Config, error) {
	filePath, required := opts.configFile, true
	if filePath == "" {
		filePath, required = config.DefaultFilePath(), false
	}
	fileValues, err := config.LoadFile(filePath, required)
	if err != nil {
		return nil, err
	}

	envValues, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	return config.Resolve(path, config.Defaults(), fileValues, envValues, explicitFlags(cmd, opts))
}

func explicitFlags(cmd *cobra.Command, opts *options) config.Values {
	var v config.Values
	flags := cmd.Flags()
	if flags.Changed("tool") {
		v.Tool = opts.tool
	}
	if flags.Changed("exclude") {
		v.Exclude = opts.exclude
	}
	if flags.Changed("report_file") {
		v.ReportFile = opts.reportFile
	}
	if flags.Changed("output") {
		v.Format = opts.format
	}
	if flags.Changed("log-level") {
		v.LogLevel = opts.logLevel
	}
	if flags.Changed("quiet") {
		quiet := opts.quiet
		v.Quiet = &quiet
	}
	return v
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ %s\n", msg)
}

func printError(w io.Writer, msg string) {
	red := color.New(color.FgRed)
	red.Fprintf(w, "✗ %s\n", msg)
}
