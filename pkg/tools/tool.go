package tools

// Name identifies a supported analysis tool on the command line.
type Name string

const (
	NameBandit    Name = "bandit"
	NameFlake8    Name = "flake8"
	NamePylint    Name = "pylint"
	NamePyreCheck Name = "pyre-check"
)

// Tool builds the command line for one external analyzer. Invocation and
// error translation are shared and live in the analyzer package.
type Tool interface {
	Name() Name
	// DisplayName is the human-readable name used in log lines and
	// failure messages.
	DisplayName() string
	// BuildCommand returns the argv for analyzing path. exclude is the raw
	// comma-separated exclude list as given by the user.
	BuildCommand(path, exclude string) []string
}

// NotFoundReporter is implemented by tools that describe a missing
// executable with their own message.
type NotFoundReporter interface {
	NotFoundMessage() string
}
