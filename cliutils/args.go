// Package cliutils holds what the command-line tools of this module share: argument checking,
// exit codes and configuration from the environment.
package cliutils

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// The exit codes of every tool
const (
	ExitOK      int = 0
	ExitFailure int = 1
	ExitUsage   int = -1
)

// UsageError is returned when a tool is given the wrong number of arguments
type UsageError struct {
	Program string
	Params  []string
	Given   int
}

func (err UsageError) Error() string {
	return fmt.Sprintf("Insufficient arguments\nUsage: %s %s", err.Program, strings.Join(err.Params, " "))
}

// CheckArgs returns a UsageError unless 'args' (with the program name first) has exactly one
// argument for each of 'params'.
func CheckArgs(args []string, params ...string) error {
	prog := "<program>"
	if len(args) > 0 {
		prog = args[0]
	}

	if len(args)-1 != len(params) {
		given := len(args) - 1
		if given < 0 {
			given = 0
		}
		return UsageError{Program: prog, Params: params, Given: given}
	}

	return nil
}

// ExitCode returns the exit code for a tool that finished with 'err', writing the error to
// 'stderr'. A nil error gives ExitOK.
func ExitCode(err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}

	fmt.Fprintln(stderr, err.Error())
	if _, ok := errors.Cause(err).(UsageError); ok {
		return ExitUsage
	}
	return ExitFailure
}
