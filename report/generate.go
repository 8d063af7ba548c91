// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package report

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/js-arias/phenocount/category"
	"github.com/js-arias/phenocount/phenotools"
	"go.uber.org/zap"
)

// An Invoker runs phenotools
// and returns the path of its output.
type Invoker interface {
	Invoke(ctx context.Context, inv phenotools.Invocation) (string, error)
}

// A Parser reads the counts
// from a phenotools output file.
type Parser interface {
	ParseFile(name string, m phenotools.Mode) (phenotools.Counts, error)
}

// CategoryError is returned when the counts of a category
// can not be retrieved.
type CategoryError struct {
	Category category.Category
	Err      error
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("category %q (%s): %v", e.Category.Name, e.Category.Term, e.Err)
}

func (e *CategoryError) Unwrap() error { return e.Err }

// Params are the parameters of a report.
type Params struct {
	// Start and End dates of the time window.
	Start string
	End   string

	// Ontology is the path of the ontology file.
	Ontology string

	// Annotations is the path of the annotation file,
	// only used for annotation reports.
	Annotations string
}

// A Generator builds reports
// running phenotools once for each category.
type Generator struct {
	Categories *category.Registry
	Tool       Invoker

	// Parser of phenotools output.
	// If nil,
	// phenotools.FixedFormat will be used.
	Parser Parser

	// Dir is the directory of the report files.
	// If empty,
	// the current directory will be used.
	Dir string

	Logger *zap.Logger
}

// Terms builds a report with the number of ontology terms
// in each category.
// Term IDs and labels of the rows
// are the ones reported by phenotools.
func (g *Generator) Terms(ctx context.Context, p Params) (*Report, error) {
	return g.build(ctx, Terms, p)
}

// Annotations builds a report with the number of annotations
// in each category.
// Term IDs and labels of the rows
// are the ones of the categories.
func (g *Generator) Annotations(ctx context.Context, p Params) (*Report, error) {
	if p.Annotations == "" {
		return nil, errors.New("undefined annotation file")
	}
	if p.End == "" {
		return nil, errors.New("undefined end date")
	}
	return g.build(ctx, Annotations, p)
}

// GenerateTerms builds a report of ontology terms
// and writes it in the file "termcounts-<prefix>.txt".
// It returns the path of the report file.
func (g *Generator) GenerateTerms(ctx context.Context, p Params, prefix string) (string, error) {
	r, err := g.Terms(ctx, p)
	if err != nil {
		return "", err
	}
	return g.write(r, prefix)
}

// GenerateAnnotations builds a report of annotations
// and writes it in the file "annotcounts-<prefix>.txt".
// It returns the path of the report file.
func (g *Generator) GenerateAnnotations(ctx context.Context, p Params, prefix string) (string, error) {
	r, err := g.Annotations(ctx, p)
	if err != nil {
		return "", err
	}
	return g.write(r, prefix)
}

func (g *Generator) build(ctx context.Context, k Kind, p Params) (*Report, error) {
	if g.Categories == nil || g.Categories.Len() == 0 {
		return nil, errors.New("undefined categories")
	}
	if g.Tool == nil {
		return nil, errors.New("undefined phenotools")
	}

	mode := phenotools.TermCount
	if k == Annotations {
		mode = phenotools.AnnotationCount
	}

	l := g.logger()
	r := &Report{
		Kind:  k,
		Start: p.Start,
		End:   p.End,
		Rows:  make([]Row, 0, g.Categories.Len()),
	}
	for _, c := range g.Categories.Categories() {
		inv := phenotools.Invocation{
			Mode:        mode,
			Start:       p.Start,
			End:         p.End,
			Term:        c.Term,
			Ontology:    p.Ontology,
			Annotations: p.Annotations,
		}
		out, err := g.Tool.Invoke(ctx, inv)
		if err != nil {
			return nil, &CategoryError{Category: c, Err: err}
		}
		cn, err := g.parser().ParseFile(out, mode)
		if err != nil {
			return nil, &CategoryError{Category: c, Err: err}
		}

		rw := Row{
			Term:     c.Term,
			Label:    c.Name,
			InWindow: cn.InWindow,
			Total:    cn.Total,
		}
		if k == Terms {
			rw.Term = cn.ID
			rw.Label = cn.Label
		}
		r.Rows = append(r.Rows, rw)
		l.Debug("category done",
			zap.String("category", c.Name),
			zap.String("term", c.Term),
			zap.Int("in-window", cn.InWindow),
			zap.Int("total", cn.Total),
		)
	}
	return r, nil
}

func (g *Generator) write(r *Report, prefix string) (string, error) {
	name := filepath.Join(g.Dir, FileName(r.Kind, prefix))
	if err := r.WriteFile(name); err != nil {
		return "", err
	}
	g.logger().Info("report written", zap.String("file", name), zap.Int("rows", len(r.Rows)))
	return name, nil
}

func (g *Generator) parser() Parser {
	if g.Parser == nil {
		return phenotools.FixedFormat{}
	}
	return g.Parser
}

func (g *Generator) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}
