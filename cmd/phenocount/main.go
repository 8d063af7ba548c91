// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhenoCount is a tool to count HPO terms and annotations
// by subontology using phenotools.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phenocount/cmd/phenocount/annotations"
	"github.com/js-arias/phenocount/cmd/phenocount/categories"
	"github.com/js-arias/phenocount/cmd/phenocount/summary"
	"github.com/js-arias/phenocount/cmd/phenocount/terms"
)

var app = &command.Command{
	Usage: "phenocount <command> [<argument>...]",
	Short: "a tool to count HPO terms and annotations by subontology",
}

func init() {
	app.Add(annotations.Command)
	app.Add(categories.Command)
	app.Add(summary.Command)
	app.Add(terms.Command)
}

func main() {
	app.Main()
}
