package cmd

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// startSpinner shows progress on w while a tool runs. It only draws on a
// terminal so redirected stderr stays clean. The returned func stops it.
func startSpinner(w io.Writer, suffix string, quiet bool) func() {
	f, ok := w.(*os.File)
	if quiet || !ok || !isatty.IsTerminal(f.Fd()) {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(f))
	s.Suffix = suffix
	s.Start()
	return s.Stop
}
