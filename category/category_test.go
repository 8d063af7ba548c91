// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package category_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phenocount/category"
)

func TestHPO(t *testing.T) {
	r := category.HPO()

	if n := r.Len(); n != 25 {
		t.Fatalf("len: got %d, want %d", n, 25)
	}
	cats := r.Categories()
	if len(cats) != 25 {
		t.Fatalf("categories: got %d, want %d", len(cats), 25)
	}

	first := category.Category{Name: "Abnormal cellular", Term: "HP:0025354"}
	if cats[0] != first {
		t.Errorf("first category: got %v, want %v", cats[0], first)
	}
	last := category.Category{Name: "Neoplasm", Term: "HP:0002664"}
	if cats[len(cats)-1] != last {
		t.Errorf("last category: got %v, want %v", cats[len(cats)-1], last)
	}

	for i := 0; i < 3; i++ {
		if g := r.Categories(); !reflect.DeepEqual(g, cats) {
			t.Errorf("call %d: categories changed: got %v, want %v", i, g, cats)
		}
	}

	// modifying the returned slice
	// must not modify the registry.
	cats[0].Name = "changed"
	if g := r.Categories(); g[0] != first {
		t.Errorf("registry mutated: got %v, want %v", g[0], first)
	}

	c, ok := r.Lookup("HP:0000818")
	if !ok {
		t.Fatalf("lookup: term %q not found", "HP:0000818")
	}
	if c.Name != "Endocrine" {
		t.Errorf("lookup: got %q, want %q", c.Name, "Endocrine")
	}
	if _, ok := r.Lookup("HP:0000001"); ok {
		t.Errorf("lookup: unexpected term %q", "HP:0000001")
	}
}

func TestNewErrors(t *testing.T) {
	tests := map[string][]category.Category{
		"empty name":     {{Name: " ", Term: "HP:0000818"}},
		"empty term":     {{Name: "Endocrine", Term: ""}},
		"no prefix":      {{Name: "Endocrine", Term: "0000818"}},
		"space in term":  {{Name: "Endocrine", Term: "HP: 0000818"}},
		"duplicate term": {{Name: "Endocrine", Term: "HP:0000818"}, {Name: "Other", Term: "HP:0000818"}},
	}

	for name, cats := range tests {
		if _, err := category.New(cats...); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestTSV(t *testing.T) {
	r := category.HPO()

	var w bytes.Buffer
	if err := r.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	nr, err := category.ReadTSV(strings.NewReader(w.String()))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	if g, w := nr.Categories(), r.Categories(); !reflect.DeepEqual(g, w) {
		t.Errorf("tsv: got %v, want %v", g, w)
	}
}

func TestReadTSV(t *testing.T) {
	in := `# custom categories
name	term	comment
Cardiovascular	HP:0001626	heart
Eye	HP:0000478	
`
	r, err := category.ReadTSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	want := []category.Category{
		{Name: "Cardiovascular", Term: "HP:0001626"},
		{Name: "Eye", Term: "HP:0000478"},
	}
	if g := r.Categories(); !reflect.DeepEqual(g, want) {
		t.Errorf("categories: got %v, want %v", g, want)
	}

	bad := map[string]string{
		"no term field": "name\nEye\n",
		"no rows":       "term\tname\n",
		"no name":       "term\tname\nHP:0000478\t\n",
	}
	for name, in := range bad {
		if _, err := category.ReadTSV(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
