// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package config implements the environment configuration
// of phenocount commands.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Environment variables.
const (
	EnvTool     = "PHENOTOOLS"
	EnvOutput   = "PHENOTOOLS_OUT"
	EnvTimeout  = "PHENOTOOLS_TIMEOUT"
	EnvLogLevel = "PHENOCOUNT_LOG_LEVEL"
)

// Config is the configuration of phenocount.
type Config struct {
	// Tool is the name or path of the phenotools executable.
	Tool string

	// Output is the file used for phenotools output.
	Output string

	// Timeout of each phenotools run,
	// zero for no time limit.
	Timeout time.Duration

	// LogLevel is the minimum level of logged messages.
	LogLevel zapcore.Level
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Tool:     "phenotools",
		Output:   filepath.Join(os.TempDir(), "phenotools-out.txt"),
		LogLevel: zapcore.InfoLevel,
	}
}

var loadDotEnv = godotenv.Load

// Load reads the configuration
// from the environment.
// If there is a .env file in the current directory
// its values are added to the environment
// (without overriding defined variables).
func Load() (Config, error) {
	// a missing .env file is not an error
	_ = loadDotEnv()

	cfg := Default()
	if v := getEnv(EnvTool); v != "" {
		cfg.Tool = v
	}
	if v := getEnv(EnvOutput); v != "" {
		cfg.Output = v
	}
	if v := getEnv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("env %s: %v", EnvTimeout, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("env %s: negative timeout %v", EnvTimeout, d)
		}
		cfg.Timeout = d
	}
	if v := getEnv(EnvLogLevel); v != "" {
		l, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("env %s: %v", EnvLogLevel, err)
		}
		cfg.LogLevel = l
	}
	return cfg, nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
