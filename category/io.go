// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package category

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var header = []string{
	"term",
	"name",
}

// ReadTSV reads a registry of categories
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - term, the term ID of the root of the category
//   - name, the name of the category
//
// Any other field will be ignored.
// The order of the rows is the order of the registry.
//
// Here is an example file:
//
//	# HPO subontologies
//	term	name
//	HP:0001626	Cardiovascular
//	HP:0000818	Endocrine
//	HP:0000478	Eye
func ReadTSV(r io.Reader) (*Registry, error) {
	tab := csv.NewReader(r)
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
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	var cats []Category
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "term"
		term := strings.TrimSpace(row[fields[f]])
		if term == "" {
			continue
		}

		f = "name"
		name := row[fields[f]]
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty value", ln, f)
		}
		cats = append(cats, Category{Name: name, Term: term})
	}
	if len(cats) == 0 {
		return nil, errors.New("no categories defined")
	}

	return New(cats...)
}

// ReadFile reads a registry of categories
// from a TSV file with the given name.
func ReadFile(name string) (*Registry, error) {
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

// TSV writes the registry as a TSV file.
func (r *Registry) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, c := range r.cats {
		row := []string{
			c.Term,
			c.Name,
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
