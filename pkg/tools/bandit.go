package tools

import "github.com/helmcode/excheck/pkg/parser"

// Bandit runs a recursive bandit scan with plain text output.
type Bandit struct{}

func NewBandit() *Bandit {
	return &Bandit{}
}

func (b *Bandit) Name() Name { return NameBandit }

func (b *Bandit) DisplayName() string { return "Bandit" }

func (b *Bandit) BuildCommand(path, exclude string) []string {
	command := []string{"bandit", "-r", path, "-f", "txt"}
	// bandit takes one --exclude flag per entry
	for _, e := range parser.ParseExcludes(exclude) {
		command = append(command, "--exclude="+e)
	}
	return command
}
