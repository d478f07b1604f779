package tools

import "github.com/helmcode/excheck/pkg/parser"

type Pylint struct {
	disabled string
}

func NewPylint() *Pylint {
	return &Pylint{disabled: "C0301,W0703,W0702,broad-except"}
}

func (p *Pylint) Name() Name { return NamePylint }

func (p *Pylint) DisplayName() string { return "Pylint" }

func (p *Pylint) BuildCommand(path, exclude string) []string {
	command := []string{"pylint", path, "--disable=" + p.disabled}
	if joined := parser.JoinExcludes(exclude); joined != "" {
		command = append(command, "--ignore", joined)
	}
	return command
}
