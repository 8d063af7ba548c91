// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package setup_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/js-arias/phenocount/cmd/phenocount/setup"
	"github.com/js-arias/phenocount/config"
	"github.com/js-arias/phenocount/phenotools"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestGenerator(t *testing.T) {
	cfg := config.Config{
		Tool:     "phenotools",
		Output:   "tmp.txt",
		Timeout:  time.Minute,
		LogLevel: zapcore.InfoLevel,
	}

	g, err := setup.Generator(cfg, setup.Options{Dir: "out"}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := g.Categories.Len(); n != 25 {
		t.Errorf("categories: got %d, want %d", n, 25)
	}
	if g.Dir != "out" {
		t.Errorf("dir: got %q, want %q", g.Dir, "out")
	}
	tool, ok := g.Tool.(*phenotools.Tool)
	if !ok {
		t.Fatalf("tool: got %T, want %T", g.Tool, tool)
	}
	if tool.Path != "phenotools" || tool.Output != "tmp.txt" || tool.Timeout != time.Minute {
		t.Errorf("tool: got %+v", tool)
	}

	name := filepath.Join(t.TempDir(), "cats.tab")
	if err := os.WriteFile(name, []byte("term\tname\nHP:0000478\tEye\n"), 0o644); err != nil {
		t.Fatalf("unable to write category file: %v", err)
	}
	g, err = setup.Generator(cfg, setup.Options{Tool: "/usr/local/bin/phenotools", Categories: name}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := g.Categories.Len(); n != 1 {
		t.Errorf("categories: got %d, want %d", n, 1)
	}
	if p := g.Tool.(*phenotools.Tool).Path; p != "/usr/local/bin/phenotools" {
		t.Errorf("tool path: got %q, want %q", p, "/usr/local/bin/phenotools")
	}

	if _, err := setup.Generator(cfg, setup.Options{Categories: filepath.Join(t.TempDir(), "none.tab")}, zap.NewNop()); err == nil {
		t.Errorf("expecting error on missing category file")
	}
}

func TestLogger(t *testing.T) {
	l, err := setup.Logger(zapcore.WarnLevel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Errorf("info level enabled on a warn logger")
	}
	if !l.Core().Enabled(zapcore.ErrorLevel) {
		t.Errorf("error level disabled on a warn logger")
	}
}
