package tools

import "github.com/helmcode/excheck/pkg/parser"

// Flake8 lints with pycodestyle, pyflakes and mccabe checks while leaving
// bare/broad except findings to the other tools.
type Flake8 struct {
	extendIgnore  string
	selectCodes   string
	maxComplexity string
}

func NewFlake8() *Flake8 {
	return &Flake8{
		extendIgnore:  "E722,B001,B028",
		selectCodes:   "E,W,F,C90",
		maxComplexity: "10",
	}
}

func (f *Flake8) Name() Name { return NameFlake8 }

func (f *Flake8) DisplayName() string { return "Flake8" }

func (f *Flake8) BuildCommand(path, exclude string) []string {
	command := []string{
		"flake8", path,
		"--extend-ignore=" + f.extendIgnore,
		"--select=" + f.selectCodes,
		"--max-complexity=" + f.maxComplexity,
	}
	// flake8 takes a single comma-separated pattern list
	if joined := parser.JoinExcludes(exclude); joined != "" {
		command = append(command, "--exclude", joined)
	}
	return command
}
