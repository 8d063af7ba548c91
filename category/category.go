// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package category implements an ordered registry
// of named ontology categories.
//
// A category is a top-level branch of an ontology
// (for example, the "Cardiovascular" subontology of HPO)
// identified by the term ID of the branch root.
package category

import (
	"fmt"
	"strings"
)

// A Category is a named ontology branch.
type Category struct {
	// Name is the human readable name of the category.
	Name string

	// Term is the term ID of the root of the category,
	// for example "HP:0001626".
	Term string
}

// A Registry is an immutable ordered list of categories.
type Registry struct {
	cats []Category
	ids  map[string]int
}

// New creates a new registry from a list of categories.
// The order of the categories is kept.
func New(cats ...Category) (*Registry, error) {
	r := &Registry{
		cats: make([]Category, 0, len(cats)),
		ids:  make(map[string]int, len(cats)),
	}
	for i, c := range cats {
		c.Name = strings.Join(strings.Fields(c.Name), " ")
		if c.Name == "" {
			return nil, fmt.Errorf("category %d: empty name", i)
		}
		c.Term = strings.TrimSpace(c.Term)
		if err := validTerm(c.Term); err != nil {
			return nil, fmt.Errorf("category %q: %v", c.Name, err)
		}
		if j, ok := r.ids[c.Term]; ok {
			return nil, fmt.Errorf("category %q: term %s already used by %q", c.Name, c.Term, r.cats[j].Name)
		}
		r.ids[c.Term] = len(r.cats)
		r.cats = append(r.cats, c)
	}
	return r, nil
}

func validTerm(id string) error {
	prefix, local, ok := strings.Cut(id, ":")
	if !ok || prefix == "" || local == "" {
		return fmt.Errorf("invalid term ID %q", id)
	}
	if strings.ContainsAny(id, " \t") {
		return fmt.Errorf("invalid term ID %q", id)
	}
	return nil
}

// Categories returns the categories in the registry,
// in the order of definition.
// The returned slice is a copy.
func (r *Registry) Categories() []Category {
	cats := make([]Category, len(r.cats))
	copy(cats, r.cats)
	return cats
}

// Len returns the number of categories in the registry.
func (r *Registry) Len() int {
	return len(r.cats)
}

// Lookup returns the category with the given term ID.
func (r *Registry) Lookup(term string) (Category, bool) {
	i, ok := r.ids[term]
	if !ok {
		return Category{}, false
	}
	return r.cats[i], true
}

// hpo are the top-level subontologies
// of the Human Phenotype Ontology.
var hpo = []Category{
	{"Abnormal cellular", "HP:0025354"},
	{"Blood", "HP:0001871"},
	{"Connective tissue", "HP:0003549"},
	{"Head and neck", "HP:0000152"},
	{"Limbs", "HP:0040064"},
	{"Metabolism/Lab", "HP:0001939"},
	{"Prenatal", "HP:0001197"},
	{"Breast", "HP:0000769"},
	{"Cardiovascular", "HP:0001626"},
	{"Digestive", "HP:0025031"},
	{"Ear", "HP:0000598"},
	{"Endocrine", "HP:0000818"},
	{"Eye", "HP:0000478"},
	{"Genitourinary", "HP:0000119"},
	{"Immunology", "HP:0002715"},
	{"Integument", "HP:0001574"},
	{"Muscle", "HP:0003011"},
	{"Nervous system", "HP:0000707"},
	{"Respiratory", "HP:0002086"},
	{"Skeletal", "HP:0000924"},
	{"Thoracic cavity", "HP:0045027"},
	{"Voice", "HP:0001608"},
	{"Constitutional", "HP:0025142"},
	{"Growth", "HP:0001507"},
	{"Neoplasm", "HP:0002664"},
}

// HPO returns a new registry with the 25 top-level
// subontologies of the Human Phenotype Ontology.
func HPO() *Registry {
	r, err := New(hpo...)
	if err != nil {
		panic(err)
	}
	return r
}
