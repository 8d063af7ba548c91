// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package setup builds the values shared
// by phenocount commands
// from the environment and command flags.
package setup

import (
	"fmt"

	"github.com/js-arias/phenocount/category"
	"github.com/js-arias/phenocount/config"
	"github.com/js-arias/phenocount/phenotools"
	"github.com/js-arias/phenocount/report"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options are command flags
// that override the environment configuration.
type Options struct {
	// Tool is the path of phenotools.
	Tool string

	// Categories is the name of a category file.
	Categories string

	// Dir is the output directory of the reports.
	Dir string
}

// Logger returns a console logger
// that writes into the standard error.
func Logger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	zc.Sampling = nil

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to initialize logger: %v", err)
	}
	return l, nil
}

// Registry returns the registry of categories
// stored in the given file.
// If no file is given,
// it returns the HPO subontologies.
func Registry(name string) (*category.Registry, error) {
	if name == "" {
		return category.HPO(), nil
	}
	return category.ReadFile(name)
}

// Generator returns a report generator.
func Generator(cfg config.Config, opts Options, l *zap.Logger) (*report.Generator, error) {
	reg, err := Registry(opts.Categories)
	if err != nil {
		return nil, err
	}

	path := cfg.Tool
	if opts.Tool != "" {
		path = opts.Tool
	}
	tool := &phenotools.Tool{
		Path:    path,
		Output:  cfg.Output,
		Timeout: cfg.Timeout,
		Logger:  l,
	}

	return &report.Generator{
		Categories: reg,
		Tool:       tool,
		Parser:     phenotools.FixedFormat{},
		Dir:        opts.Dir,
		Logger:     l,
	}, nil
}
