// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package categories implements a command to print
// the categories used in the reports.
package categories

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phenocount/cmd/phenocount/setup"
)

var Command = &command.Command{
	Usage: "categories [--categories <file>]",
	Short: "print the categories used in the reports",
	Long: `
Command categories prints the term ID and name of the categories used in the
reports, in report order, as a tab-delimited file in the standard output.

By default, it prints the 25 HPO subontologies. If the flag --categories is
defined, the categories will be read from the indicated file. The output of
the command can be used as a template for a category file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var catFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&catFlag, "categories", "", "")
}

func run(c *command.Command, args []string) error {
	reg, err := setup.Registry(catFlag)
	if err != nil {
		return err
	}
	return reg.TSV(c.Stdout())
}
