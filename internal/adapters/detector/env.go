// Package detector decides how interactive the terminal output may be.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is the rendering mode for command output.
type OutputMode int

const (
	// ModeInteractive allows transient output such as the discovery progress line.
	ModeInteractive OutputMode = iota
	// ModePlain only writes output that is meant to be kept or parsed.
	ModePlain
)

// DetectEnvironment reports ModeInteractive when stdout is a terminal outside CI.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	if !isTTY || ci == "true" || ci == "1" {
		return ModePlain
	}
	return ModeInteractive
}

// ResolveMode applies the --json flag to the detected mode. JSON output is always plain.
func ResolveMode(autoDetected OutputMode, jsonOutput bool) OutputMode {
	if jsonOutput {
		return ModePlain
	}
	return autoDetected
}

// ShowProgress reports whether a progress indicator may be drawn in this mode.
func (m OutputMode) ShowProgress() bool {
	return m == ModeInteractive
}
