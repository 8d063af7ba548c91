// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package phenotools implements an interface
// to the phenotools command line program:
// it builds and runs the program for a single ontology term,
// and reads the counts reported in its output file.
package phenotools

import (
	"errors"
	"fmt"
)

// Mode is a query mode of phenotools.
type Mode int

// Valid query modes.
const (
	// TermCount counts the ontology terms
	// descending from a term
	// and the ones created in a date window.
	TermCount Mode = iota

	// AnnotationCount counts the disease annotations
	// to the terms descending from a term
	// and the ones created in a date window.
	AnnotationCount
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case TermCount:
		return "term_count"
	case AnnotationCount:
		return "annotation_count"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Command returns the phenotools subcommand
// used by the mode.
func (m Mode) Command() string {
	switch m {
	case TermCount:
		return "hpo"
	case AnnotationCount:
		return "annotation"
	}
	return ""
}

// An Invocation is the set of parameters
// of a single phenotools run.
type Invocation struct {
	Mode Mode

	// Start and End are the dates of the time window,
	// for example "2018-01-01".
	Start string
	End   string

	// Term is the term ID of the queried term.
	Term string

	// Ontology is the path of the ontology file
	// (usually hp.json).
	Ontology string

	// Annotations is the path of the annotation file
	// (usually phenotype.hpoa).
	// Only used by AnnotationCount.
	Annotations string
}

// Args returns the argument vector of phenotools
// for the invocation,
// writing its output into the indicated file.
//
// In TermCount mode,
// if no end date is defined,
// the flag --enddate is not used.
func (inv Invocation) Args(out string) ([]string, error) {
	if inv.Ontology == "" {
		return nil, errors.New("undefined ontology file")
	}
	if inv.Start == "" {
		return nil, errors.New("undefined start date")
	}
	if inv.Term == "" {
		return nil, errors.New("undefined term")
	}
	if out == "" {
		return nil, errors.New("undefined output file")
	}

	switch inv.Mode {
	case TermCount:
		args := []string{inv.Mode.Command(), "--hp", inv.Ontology, "--date", inv.Start}
		if inv.End != "" {
			args = append(args, "--enddate", inv.End)
		}
		args = append(args, "--term", inv.Term, "--out", out)
		return args, nil
	case AnnotationCount:
		if inv.Annotations == "" {
			return nil, errors.New("undefined annotation file")
		}
		if inv.End == "" {
			return nil, errors.New("undefined end date")
		}
		args := []string{
			inv.Mode.Command(),
			"--hp", inv.Ontology,
			"-a", inv.Annotations,
			"--date", inv.Start,
			"--enddate", inv.End,
			"--term", inv.Term,
			"--out", out,
		}
		return args, nil
	}
	return nil, fmt.Errorf("unknown mode %v", inv.Mode)
}
