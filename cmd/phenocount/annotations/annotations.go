// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package annotations implements a command to count
// the disease annotations of each HPO subontology.
package annotations

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/js-arias/command"
	"github.com/js-arias/phenocount/cmd/phenocount/setup"
	"github.com/js-arias/phenocount/config"
	"github.com/js-arias/phenocount/report"
)

var Command = &command.Command{
	Usage: `annotations -d|--date <date> -e|--enddate <date>
	-a|--annot <annotation-file> -h|--hpo <ontology-file>
	[--prefix <name>] [--categories <file>] [--tool <path>]
	[--dir <directory>]`,
	Short: "count disease annotations by subontology",
	Long: `
Command annotations runs phenotools for each HPO subontology and writes a
report with the number of disease annotations to the terms of each
subontology, and the number of annotations created in a time window.

The flags --date (or -d) and --enddate (or -e) are required and define the
start and end dates of the time window, for example "2018-01-01".

The flag --annot, or -a, is required and defines the path of the annotation
file (usually phenotype.hpoa). The flag --hpo, or -h, is required and defines
the path of the ontology file (usually hp.json).

The report will be written in the file "annotcounts-<prefix>.txt". By default
the prefix is "hpo". Use the flag --prefix to define a different prefix. By
default the file is written in the current directory; use the flag --dir to
define a different directory.

By default the 25 HPO subontologies are used. The flag --categories defines a
tab-delimited file with a different set of categories. The labels of the
report are the names of the categories.

The flag --tool sets the path of the phenotools program. See "phenocount help
environment" for other settings.

If phenotools fails, or its output can not be read, for any subontology, the
command ends with an error and no report is written.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var dateFlag string
var endFlag string
var annotFlag string
var hpoFlag string
var prefixFlag string
var catFlag string
var toolFlag string
var dirFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&dateFlag, "date", "", "")
	c.Flags().StringVar(&dateFlag, "d", "", "")
	c.Flags().StringVar(&endFlag, "enddate", "", "")
	c.Flags().StringVar(&endFlag, "e", "", "")
	c.Flags().StringVar(&annotFlag, "annot", "", "")
	c.Flags().StringVar(&annotFlag, "a", "", "")
	c.Flags().StringVar(&hpoFlag, "hpo", "", "")
	c.Flags().StringVar(&hpoFlag, "h", "", "")
	c.Flags().StringVar(&prefixFlag, "prefix", "hpo", "")
	c.Flags().StringVar(&catFlag, "categories", "", "")
	c.Flags().StringVar(&toolFlag, "tool", "", "")
	c.Flags().StringVar(&dirFlag, "dir", "", "")
}

func run(c *command.Command, args []string) error {
	if err := checkFlags(); err != nil {
		return c.UsageError(err.Error())
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	l, err := setup.Logger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer l.Sync()

	g, err := setup.Generator(cfg, setup.Options{
		Tool:       toolFlag,
		Categories: catFlag,
		Dir:        dirFlag,
	}, l)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := report.Params{
		Start:       dateFlag,
		End:         endFlag,
		Ontology:    hpoFlag,
		Annotations: annotFlag,
	}
	if _, err := g.GenerateAnnotations(ctx, p, prefixFlag); err != nil {
		return err
	}
	return nil
}

func checkFlags() error {
	if dateFlag == "" {
		return errors.New("flag --date required")
	}
	if endFlag == "" {
		return errors.New("flag --enddate required")
	}
	if annotFlag == "" {
		return errors.New("flag --annot required")
	}
	if hpoFlag == "" {
		return errors.New("flag --hpo required")
	}
	if prefixFlag == "" {
		return errors.New("flag --prefix must not be empty")
	}
	return nil
}
