// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(categoryFilesGuide)
	app.Add(environmentGuide)
	app.Add(reportFilesGuide)
	app.Add(toolOutputGuide)
}

var reportFilesGuide = &command.Command{
	Usage: "report-files",
	Short: "about report files",
	Long: `
The commands terms and annotations write their counts in a report file. Term
reports are written in the file "termcounts-<prefix>.txt" and annotation
reports in the file "annotcounts-<prefix>.txt".

A report file is a tab-delimited file that starts with a header block of three
comment lines:

	- the kind of the report, "#Terms" or "#Annotations"
	- the start date of the time window, "#start-date:<date>"
	- the end date of the time window, "#end-date:<date>"

followed by the fields:

	- subontology.id     the term ID of the subontology
	- subontology.label  the label of the subontology
	- created.in.window  the number of terms, or annotations, created in
	                     the time window
	- total              the total number of terms, or annotations

There is a row for each category, in the order of the categories.

Here is an example file:

	#Terms
	#start-date:2018-01-01
	#end-date:2020-12-31
	subontology.id	subontology.label	created.in.window	total
	HP:0025354	Abnormal cellular phenotype	57	292
	HP:0001871	Abnormality of blood and blood-forming tissues	48	720
	`,
}

var categoryFilesGuide = &command.Command{
	Usage: "category-files",
	Short: "about category files",
	Long: `
By default, PhenoCount counts terms and annotations for the 25 top-level
subontologies of HPO. A different set of categories can be defined with a
category file, using the flag --categories.

A category file is a tab-delimited file with the following fields:

	- term  the term ID of the root of the category
	- name  the name of the category

Any other field will be ignored. Term IDs must not be repeated. The order of
the rows is the order of the rows in the reports.

Here is an example file:

	# selected subontologies
	term	name
	HP:0001626	Cardiovascular
	HP:0000818	Endocrine
	HP:0000478	Eye

The command "phenocount categories" prints the default categories in this
format.
	`,
}

var toolOutputGuide = &command.Command{
	Usage: "tool-output",
	Short: "about the phenotools output",
	Long: `
For each category, PhenoCount runs phenotools and reads the counts from the
comment lines of its output file. Any other line is ignored.

For term counts ("phenotools hpo"), the following lines are read:

	#Subontology: HP:0000818 (Abnormality of the endocrine system)
	#Created after 2018-01-01: 7
	#Total: 42

The term ID is read from the first eleven characters after the
"#Subontology:" prefix, and the label from the rest of the line.

For annotation counts ("phenotools annotation"), the following lines are
read:

	#total annotations to terms descending from Endocrine:1042
	#total annotations newer than 2018-01-01:178

Counts are read after the first colon of the line. If a line is repeated, the
last value is used. If a line is missing, or a count is not a number, the
command fails.
	`,
}

var environmentGuide = &command.Command{
	Usage: "environment",
	Short: "about environment variables",
	Long: `
PhenoCount reads the following environment variables. If there is a file
called ".env" in the current directory, variables not already defined are read
from that file.

	PHENOTOOLS            name or path of the phenotools program
	                      (default "phenotools")
	PHENOTOOLS_OUT        file used for the phenotools output. It is
	                      overwritten for each category
	                      (default "phenotools-out.txt" in the temporary
	                      directory)
	PHENOTOOLS_TIMEOUT    maximum duration of each phenotools run, for
	                      example "10m" (by default there is no limit)
	PHENOCOUNT_LOG_LEVEL  minimum level of logged messages: "debug",
	                      "info", "warn", or "error" (default "info")

Log messages are written in the standard error.
	`,
}
