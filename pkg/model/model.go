package model

// Outcome classifies how an external tool invocation ended.
type Outcome string

const (
	OutcomeSuccess    Outcome = "success"
	OutcomeToolFailed Outcome = "tool_failed"
	OutcomeNotFound   Outcome = "not_found"
	OutcomeError      Outcome = "error"
)

// Result is the outcome of a single analysis run. Output is either the tool's
// captured stdout or a message describing why the run failed.
type Result struct {
	Tool     string   `json:"tool" yaml:"tool"`
	Command  []string `json:"command" yaml:"command"`
	Outcome  Outcome  `json:"outcome" yaml:"outcome"`
	ExitCode int      `json:"exit_code" yaml:"exit_code"`
	Output   string   `json:"output" yaml:"output"`
}

// Failed reports whether the tool did not produce a normal report.
func (r *Result) Failed() bool {
	return r.Outcome != OutcomeSuccess
}
