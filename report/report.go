// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package report implements count reports
// of ontology terms and annotations
// by ontology category.
//
// A report is a tab-delimited file (TSV)
// with a header block of comment lines.
package report

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Kind is the kind of the counts in a report.
type Kind int

// Valid report kinds.
const (
	// Terms is a report of ontology term counts.
	Terms Kind = iota

	// Annotations is a report of annotation counts.
	Annotations
)

// String returns the name used in the report header.
func (k Kind) String() string {
	switch k {
	case Terms:
		return "Terms"
	case Annotations:
		return "Annotations"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// FileName returns the name of the report file
// of the given kind
// with the given prefix.
func FileName(k Kind, prefix string) string {
	switch k {
	case Annotations:
		return "annotcounts-" + prefix + ".txt"
	}
	return "termcounts-" + prefix + ".txt"
}

// A Row is the count for a category.
type Row struct {
	// Term ID and label of the category.
	Term  string
	Label string

	// InWindow is the number of terms,
	// or annotations,
	// created in the time window.
	InWindow int

	// Total number of terms,
	// or annotations.
	Total int
}

// A Report is a set of counts by category.
type Report struct {
	Kind Kind

	// Start and End dates of the time window.
	Start string
	End   string

	// Rows in category order.
	Rows []Row
}

var header = []string{
	"subontology.id",
	"subontology.label",
	"created.in.window",
	"total",
}

// TSV writes a report as a TSV file.
func (r *Report) TSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#%s\n", r.Kind)
	fmt.Fprintf(bw, "#start-date:%s\n", r.Start)
	fmt.Fprintf(bw, "#end-date:%s\n", r.End)

	tab := csv.NewWriter(bw)
	tab.Comma = '\t'

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, rw := range r.Rows {
		row := []string{
			rw.Term,
			rw.Label,
			strconv.Itoa(rw.InWindow),
			strconv.Itoa(rw.Total),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// WriteFile writes a report into a file.
// If the report can not be written
// the file is removed.
func (r *Report) WriteFile(name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	if err := r.TSV(f); err != nil {
		return fmt.Errorf("while writing %q: %v", name, err)
	}
	return nil
}

// ReadTSV reads a report from a TSV file.
//
// The file starts with a header block of comment lines
// with the kind of the report
// and the dates of the time window,
// followed by the fields:
//
//   - subontology.id, the term ID of the category
//   - subontology.label, the label of the category
//   - created.in.window, the counts in the time window
//   - total, the total counts
//
// Here is an example file:
//
//	#Terms
//	#start-date:2018-01-01
//	#end-date:2020-12-31
//	subontology.id	subontology.label	created.in.window	total
//	HP:0025354	Abnormal cellular phenotype	57	292
//	HP:0001871	Abnormality of blood and blood-forming tissues	48	720
func ReadTSV(r io.Reader) (*Report, error) {
	br := bufio.NewReader(r)

	rep := &Report{}
	for {
		b, err := br.Peek(1)
		if err != nil || b[0] != '#' {
			break
		}
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("while reading header: %v", err)
		}
		line = strings.TrimRight(line, "\r\n")

		switch {
		case line == "#Terms":
			rep.Kind = Terms
		case line == "#Annotations":
			rep.Kind = Annotations
		case strings.HasPrefix(line, "#start-date:"):
			rep.Start = strings.TrimSpace(strings.TrimPrefix(line, "#start-date:"))
		case strings.HasPrefix(line, "#end-date:"):
			rep.End = strings.TrimSpace(strings.TrimPrefix(line, "#end-date:"))
		}
	}

	tab := csv.NewReader(br)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	// older reports
	if _, ok := fields["created.in.window"]; !ok {
		if i, ok := fields["created.after"]; ok {
			fields["created.in.window"] = i
		}
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		var rw Row
		f := "subontology.id"
		rw.Term = strings.TrimSpace(row[fields[f]])
		if rw.Term == "" {
			continue
		}

		f = "subontology.label"
		rw.Label = row[fields[f]]

		f = "created.in.window"
		rw.InWindow, err = strconv.Atoi(strings.TrimSpace(row[fields[f]]))
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "total"
		rw.Total, err = strconv.Atoi(strings.TrimSpace(row[fields[f]]))
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		rep.Rows = append(rep.Rows, rw)
	}
	return rep, nil
}

// ReadFile reads a report from a file.
func ReadFile(name string) (*Report, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return r, nil
}
