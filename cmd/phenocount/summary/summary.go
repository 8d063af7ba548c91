// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package summary implements a command to print
// the proportion of new terms or annotations
// in count reports.
package summary

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/js-arias/command"
	"github.com/js-arias/phenocount/report"
)

var Command = &command.Command{
	Usage: "summary <report-file>...",
	Short: "print a summary of count reports",
	Long: `
Command summary reads one or more report files, produced by the commands terms
or annotations, and prints the proportion of the counts created in the time
window of each category.

For each report it also prints the totals, the pooled proportion (the sum of
the counts in the window divided by the sum of all counts), and the mean and
median of the proportions of the categories. Categories without counts are
ignored in the mean and median.

One or more report files must be given as arguments.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting report file")
	}

	for i, name := range args {
		r, err := report.ReadFile(name)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintf(c.Stdout(), "\n")
		}
		if err := printSummary(c.Stdout(), name, r); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(w io.Writer, name string, r *report.Report) error {
	s := r.Summary()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s: %s [%s, %s]\n", name, r.Kind, r.Start, r.End)
	fmt.Fprintf(tw, "term\tlabel\tin-window\ttotal\tproportion\n")
	for i, rw := range r.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.4f\n", rw.Term, rw.Label, rw.InWindow, rw.Total, s.Proportion[i])
	}
	fmt.Fprintf(tw, "total\t\t%d\t%d\t%.4f\n", s.InWindow, s.Total, s.Pooled)
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "mean: %.4f\tmedian: %.4f\n", s.Mean, s.Median)
	return nil
}
