// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phenotools

import (
	"fmt"
	"strings"
	"time"
)

// ToolNotFoundError is returned when the phenotools
// executable can not be found.
type ToolNotFoundError struct {
	Path string
	Err  error
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("phenotools executable %q not found: %v", e.Path, e.Err)
}

func (e *ToolNotFoundError) Unwrap() error { return e.Err }

// ToolExecutionError is returned when phenotools
// ends with an error
// or without writing its output.
type ToolExecutionError struct {
	Args []string

	// Exit code of the process,
	// -1 if the process does not end with an exit code.
	Code int

	// Stderr is the error output of the process.
	Stderr string

	Err error
}

func (e *ToolExecutionError) Error() string {
	msg := fmt.Sprintf("phenotools %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Code >= 0 {
		msg = fmt.Sprintf("%s (exit code %d)", msg, e.Code)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ToolExecutionError) Unwrap() error { return e.Err }

// ToolTimeoutError is returned when phenotools
// does not finish in the allowed time.
type ToolTimeoutError struct {
	Args    []string
	Timeout time.Duration
}

func (e *ToolTimeoutError) Error() string {
	return fmt.Sprintf("phenotools %s: timeout after %v", strings.Join(e.Args, " "), e.Timeout)
}

// MissingFieldError is returned when a required field
// is not found in the phenotools output.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %q not found", e.Field)
}

// MalformedValueError is returned when a numeric field
// of the phenotools output has an invalid value.
type MalformedValueError struct {
	Field string
	Line  int
	Value string
	Err   error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("on line %d: field %q: invalid value %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *MalformedValueError) Unwrap() error { return e.Err }
