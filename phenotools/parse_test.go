// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phenotools_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/phenocount/phenotools"
)

func TestParseTermCount(t *testing.T) {
	tests := map[string]struct {
		in   string
		want phenotools.Counts
	}{
		"short": {
			in: "#Subontology (HP:0000818) Endocrine\n#Created after:7\n#Total:42\n",
			want: phenotools.Counts{
				ID:       "HP:0000818",
				Label:    "Endocrine",
				InWindow: 7,
				Total:    42,
			},
		},
		"phenotools": {
			in: `#Subontology: HP:0001626 (Abnormality of the cardiovascular system)
#hpo.id	hpo.label	creation.date	included
HP:0001627	Abnormal heart morphology	2009-1-3	F
#Created after 2018-01-01: 0
#Total: 1
HP:0031567	Double outlet left ventricle	2018-5-2	T
#Created after 2018-01-01: 1
#Total: 2
`,
			want: phenotools.Counts{
				ID:       "HP:0001626",
				Label:    "Abnormality of the cardiovascular system",
				InWindow: 1,
				Total:    2,
			},
		},
		"crlf": {
			in: "#Subontology: HP:0000478 (Abnormality of the eye)\r\n#Created after 2018-01-01: 12\r\n#Total: 30\r\n",
			want: phenotools.Counts{
				ID:       "HP:0000478",
				Label:    "Abnormality of the eye",
				InWindow: 12,
				Total:    30,
			},
		},
	}

	for name, test := range tests {
		c, err := phenotools.Parse(strings.NewReader(test.in), phenotools.TermCount)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if diff := cmp.Diff(test.want, c); diff != "" {
			t.Errorf("%s: counts mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestParseAnnotationCount(t *testing.T) {
	in := `#HP:0000818 (Abnormality of the endocrine system)
OMIM:100100	Prune belly syndrome	HP:0000028		HPO:probinson[2018-10-09]
#total annotations to terms descending from Abnormality of the endocrine system:1042
#total annotations newer than 2018-01-01:178
`
	c, err := phenotools.Parse(strings.NewReader(in), phenotools.AnnotationCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := phenotools.Counts{
		InWindow: 178,
		Total:    1042,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}

	// term count lines are ignored
	// in annotation mode.
	in = "#Subontology (HP:0000818) Endocrine\n#Created after:7\n#Total:42\n"
	_, err = phenotools.Parse(strings.NewReader(in), phenotools.AnnotationCount)
	var mf *phenotools.MissingFieldError
	if !errors.As(err, &mf) {
		t.Fatalf("got error %v, want %T", err, mf)
	}
	if mf.Field != phenotools.FieldInWindow {
		t.Errorf("missing field: got %q, want %q", mf.Field, phenotools.FieldInWindow)
	}
}

func TestParseMissingField(t *testing.T) {
	tests := map[string]struct {
		in    string
		mode  phenotools.Mode
		field string
	}{
		"no total": {
			in:    "#Subontology (HP:0000818) Endocrine\n#Created after:7\n",
			mode:  phenotools.TermCount,
			field: "total",
		},
		"no subontology": {
			in:    "#Created after:7\n#Total:42\n",
			mode:  phenotools.TermCount,
			field: phenotools.FieldID,
		},
		"no label": {
			in:    "#Subontology: HP:0000818 ()\n#Created after:7\n#Total:42\n",
			mode:  phenotools.TermCount,
			field: phenotools.FieldLabel,
		},
		"no created": {
			in:    "#Subontology (HP:0000818) Endocrine\n#Total:42\n",
			mode:  phenotools.TermCount,
			field: phenotools.FieldInWindow,
		},
		"case sensitive": {
			in:    "#Subontology (HP:0000818) Endocrine\n#Created after:7\n#TOTAL:42\n",
			mode:  phenotools.TermCount,
			field: phenotools.FieldTotal,
		},
		"empty annotation": {
			in:    "",
			mode:  phenotools.AnnotationCount,
			field: phenotools.FieldInWindow,
		},
		"no annotation total": {
			in:    "#total annotations newer than 2018-01-01:178\n",
			mode:  phenotools.AnnotationCount,
			field: phenotools.FieldTotal,
		},
	}

	for name, test := range tests {
		_, err := phenotools.Parse(strings.NewReader(test.in), test.mode)
		var mf *phenotools.MissingFieldError
		if !errors.As(err, &mf) {
			t.Errorf("%s: got error %v, want %T", name, err, mf)
			continue
		}
		if mf.Field != test.field {
			t.Errorf("%s: missing field: got %q, want %q", name, mf.Field, test.field)
		}
		if !strings.Contains(err.Error(), test.field) {
			t.Errorf("%s: error %q does not name field %q", name, err, test.field)
		}
	}
}

func TestParseMalformedValue(t *testing.T) {
	tests := map[string]struct {
		in    string
		mode  phenotools.Mode
		field string
	}{
		"total": {
			in:    "#Subontology (HP:0000818) Endocrine\n#Created after:7\n#Total:abc\n",
			mode:  phenotools.TermCount,
			field: phenotools.FieldTotal,
		},
		"created": {
			in:    "#Created after 2018-01-01: seven\n",
			mode:  phenotools.TermCount,
			field: phenotools.FieldInWindow,
		},
		"no colon": {
			in:    "#Total 42\n",
			mode:  phenotools.TermCount,
			field: phenotools.FieldTotal,
		},
		"short subontology": {
			in:    "#Subontology: HP:1\n",
			mode:  phenotools.TermCount,
			field: phenotools.FieldID,
		},
		"annotation": {
			in:    "#total annotations to terms descending from Eye:many\n",
			mode:  phenotools.AnnotationCount,
			field: phenotools.FieldTotal,
		},
	}

	for name, test := range tests {
		_, err := phenotools.Parse(strings.NewReader(test.in), test.mode)
		var mv *phenotools.MalformedValueError
		if !errors.As(err, &mv) {
			t.Errorf("%s: got error %v, want %T", name, err, mv)
			continue
		}
		if mv.Field != test.field {
			t.Errorf("%s: malformed field: got %q, want %q", name, mv.Field, test.field)
		}
	}
}

func TestParseFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "tmp.txt")
	if err := os.WriteFile(name, []byte("#Subontology (HP:0000818) Endocrine\n#Created after:7\n#Total:42\n"), 0o644); err != nil {
		t.Fatalf("unable to write output file: %v", err)
	}

	var p phenotools.FixedFormat
	c, err := p.ParseFile(name, phenotools.TermCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "HP:0000818" || c.Total != 42 {
		t.Errorf("counts: got %+v", c)
	}

	if _, err := p.ParseFile(filepath.Join(t.TempDir(), "none.txt"), phenotools.TermCount); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got error %v, want %v", err, os.ErrNotExist)
	}

	if err := os.WriteFile(name, []byte("#Total:42\n"), 0o644); err != nil {
		t.Fatalf("unable to write output file: %v", err)
	}
	_, err = p.ParseFile(name, phenotools.TermCount)
	var mf *phenotools.MissingFieldError
	if !errors.As(err, &mf) {
		t.Errorf("got error %v, want %T", err, mf)
	}
}
