// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phenotools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

var execCommandContext = exec.CommandContext

// A Runner runs an external program
// and waits until it finishes.
type Runner interface {
	Run(ctx context.Context, name string, args []string) error
}

// ExecRunner runs programs as child processes.
type ExecRunner struct{}

// Run runs a program.
// If the program fails,
// the returned error is a *ToolExecutionError
// that includes the error output of the program.
func (ExecRunner) Run(ctx context.Context, name string, args []string) error {
	cmd := execCommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return &ToolExecutionError{
			Args:   args,
			Code:   code,
			Stderr: stderr.String(),
			Err:    err,
		}
	}
	return nil
}

// Tool is a phenotools executable.
type Tool struct {
	// Path is the name or path of the executable.
	Path string

	// Output is the file used for the output
	// of phenotools.
	// The same file is overwritten on each invocation,
	// so a Tool must not be invoked concurrently.
	Output string

	// Timeout is the maximum duration of an invocation.
	// If zero,
	// there is no time limit.
	Timeout time.Duration

	// Runner used to run phenotools.
	// If nil,
	// an ExecRunner will be used.
	Runner Runner

	Logger *zap.Logger
}

// Invoke runs phenotools with the given parameters
// and returns the path of the output file.
func (t *Tool) Invoke(ctx context.Context, inv Invocation) (string, error) {
	args, err := inv.Args(t.Output)
	if err != nil {
		return "", fmt.Errorf("invalid invocation: %v", err)
	}

	path, err := exec.LookPath(t.Path)
	if err != nil {
		return "", &ToolNotFoundError{Path: t.Path, Err: err}
	}

	if err := os.Remove(t.Output); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("unable to remove previous output: %v", err)
	}

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	l := t.logger()
	l.Info("running phenotools", zap.String("command", path+" "+strings.Join(args, " ")))

	start := time.Now()
	err = t.runner().Run(ctx, path, args)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && t.Timeout > 0 {
		return "", &ToolTimeoutError{Args: args, Timeout: t.Timeout}
	}
	if err != nil {
		var execErr *ToolExecutionError
		if errors.As(err, &execErr) {
			return "", err
		}
		return "", &ToolExecutionError{Args: args, Code: -1, Err: err}
	}
	l.Debug("phenotools finished", zap.String("term", inv.Term), zap.Duration("elapsed", time.Since(start)))

	if _, err := os.Stat(t.Output); err != nil {
		return "", &ToolExecutionError{
			Args: args,
			Code: -1,
			Err:  fmt.Errorf("output file not written: %v", err),
		}
	}
	return t.Output, nil
}

func (t *Tool) runner() Runner {
	if t.Runner == nil {
		return ExecRunner{}
	}
	return t.Runner
}

func (t *Tool) logger() *zap.Logger {
	if t.Logger == nil {
		return zap.NewNop()
	}
	return t.Logger
}
