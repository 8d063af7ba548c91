// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phenotools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Names of the fields read from the phenotools output.
const (
	FieldID       = "subontology_id"
	FieldLabel    = "subontology_label"
	FieldInWindow = "created_in_window"
	FieldTotal    = "total"
)

// Line prefixes of the phenotools output.
const (
	subontologyPrefix = "#Subontology"
	createdPrefix     = "#Created after"
	totalPrefix       = "#Total"
	annotTotalPrefix  = "#total annotations to"
	annotNewerPrefix  = "#total annotations newer"
)

// Counts are the values read from a phenotools output.
type Counts struct {
	// ID and Label of the subontology.
	// Only defined in TermCount mode.
	ID    string
	Label string

	// InWindow is the number of terms,
	// or annotations,
	// created in the time window.
	InWindow int

	// Total is the total number of terms,
	// or annotations.
	Total int
}

// FixedFormat is a parser for the fixed line format
// of phenotools output files.
type FixedFormat struct{}

// ParseFile implements the parser used by report generators.
func (FixedFormat) ParseFile(name string, m Mode) (Counts, error) {
	return ParseFile(name, m)
}

// ParseFile reads the counts
// from a phenotools output file.
func ParseFile(name string, m Mode) (Counts, error) {
	f, err := os.Open(name)
	if err != nil {
		return Counts{}, err
	}
	defer f.Close()

	c, err := Parse(f, m)
	if err != nil {
		return Counts{}, fmt.Errorf("on file %q: %w", name, err)
	}
	return c, nil
}

// Parse reads the counts from a phenotools output.
//
// In TermCount mode,
// the following lines are read:
//
//	#Subontology: HP:0000818 (Endocrine)
//	#Created after 2018-01-01: 7
//	#Total: 42
//
// In AnnotationCount mode,
// the following lines are read:
//
//	#total annotations to terms descending from Endocrine:1042
//	#total annotations newer than 2018-01-01:178
//
// Any other line is ignored.
// If a line is repeated,
// the last value is used.
// If a field required by the mode is not found,
// it returns a *MissingFieldError.
func Parse(r io.Reader, m Mode) (Counts, error) {
	switch m {
	case TermCount, AnnotationCount:
	default:
		return Counts{}, fmt.Errorf("unknown mode %v", m)
	}

	var c Counts
	found := make(map[string]bool, 4)

	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		line := strings.TrimRight(sc.Text(), "\r")

		if m == TermCount {
			switch {
			case strings.HasPrefix(line, subontologyPrefix):
				id, label, err := subontology(line, ln)
				if err != nil {
					return Counts{}, err
				}
				if id != "" {
					c.ID = id
					found[FieldID] = true
				}
				if label != "" {
					c.Label = label
					found[FieldLabel] = true
				}
			case strings.HasPrefix(line, createdPrefix):
				v, err := number(line, FieldInWindow, ln)
				if err != nil {
					return Counts{}, err
				}
				c.InWindow = v
				found[FieldInWindow] = true
			case strings.HasPrefix(line, totalPrefix):
				v, err := number(line, FieldTotal, ln)
				if err != nil {
					return Counts{}, err
				}
				c.Total = v
				found[FieldTotal] = true
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, annotTotalPrefix):
			v, err := number(line, FieldTotal, ln)
			if err != nil {
				return Counts{}, err
			}
			c.Total = v
			found[FieldTotal] = true
		case strings.HasPrefix(line, annotNewerPrefix):
			v, err := number(line, FieldInWindow, ln)
			if err != nil {
				return Counts{}, err
			}
			c.InWindow = v
			found[FieldInWindow] = true
		}
	}
	if err := sc.Err(); err != nil {
		return Counts{}, err
	}

	required := []string{FieldInWindow, FieldTotal}
	if m == TermCount {
		required = []string{FieldID, FieldLabel, FieldInWindow, FieldTotal}
	}
	for _, f := range required {
		if !found[f] {
			return Counts{}, &MissingFieldError{Field: f}
		}
	}
	return c, nil
}

// Subontology reads the ID and label of a subontology line.
// The values are read at fixed positions:
// the ID is the first 11 characters
// after the prefix,
// and the label the remainder after the 12th character.
func subontology(line string, ln int) (id, label string, err error) {
	if len(line) <= 13 {
		return "", "", nil
	}
	s := strings.TrimSpace(line[13:])
	if len(s) < 11 {
		return "", "", &MalformedValueError{
			Field: FieldID,
			Line:  ln,
			Value: s,
			Err:   errors.New("value too short"),
		}
	}
	id = strings.Trim(s[:11], " ()")
	if len(s) > 12 {
		label = strings.TrimSpace(strings.ReplaceAll(s[12:], ")", ""))
	}
	return id, label, nil
}

// Number reads the integer value after the first colon.
func number(line, field string, ln int) (int, error) {
	fs := strings.Split(line, ":")
	if len(fs) < 2 {
		return 0, &MalformedValueError{
			Field: field,
			Line:  ln,
			Value: line,
			Err:   errors.New("expecting ':'"),
		}
	}
	s := strings.TrimSpace(fs[1])
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &MalformedValueError{
			Field: field,
			Line:  ln,
			Value: s,
			Err:   err,
		}
	}
	return v, nil
}
