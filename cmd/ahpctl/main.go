// SPDX-License-Identifier: MIT

// Command ahpctl runs AHP analyses over a YAML problem file.
//
//	ahpctl [--config engine.yaml] [--log-level info] [--output yaml|json] <command> problem.yaml
//
// Commands: solve, aggregate, consensus, sensitivity, synthesize.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitInconsistent = 1 // --strict and at least one CR above threshold
	ExitError        = 2
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var inconsistent *InconsistentError
		if errors.As(err, &inconsistent) {
			os.Exit(ExitInconsistent)
		}
		os.Exit(ExitError)
	}
}

// InconsistentError reports evaluators whose judgments failed the CR check
// under --strict.
type InconsistentError struct {
	Evaluators []string
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf("inconsistent judgments from %v", e.Evaluators)
}
