package main

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/feliixx/goseqtools/translate"
)

func TestRun(t *testing.T) {

	runTests := []struct {
		mode     string
		expected string
	}{
		{
			mode: "translate",
			expected: `>seq1
MV
>seq2
MH
>seq3
MAR
`,
		},
		{
			mode: "consensus",
			expected: `ATGGATTGA
A: 3 0 0 0 1 0 0 1 2
C: 0 0 0 1 1 1 1 0 1
G: 0 0 3 2 0 0 0 2 0
T: 0 3 0 0 1 2 2 0 0
`,
		},
		{
			mode: "revcomp",
			expected: `>seq1
TTAAACCAT
>seq2
TCAATGCAT
>seq3
GCGGGCCAT
`,
		},
	}

	for _, tt := range runTests {
		t.Run(tt.mode, func(t *testing.T) {

			out, err := ioutil.TempFile("", "goseqtools")
			if err != nil {
				t.Error(err)
			}
			out.Close()
			defer os.Remove(out.Name())

			options := GlobalOptions{
				Required: Required{
					Sequence: "testdata/test.fna",
					Outseq:   out.Name(),
					Mode:     tt.mode,
				},
				Options: translate.Options{NumWorker: 1},
			}

			err = run(options)
			if err != nil {
				t.Error(err)
			}

			result, err := ioutil.ReadFile(out.Name())
			if err != nil {
				t.Error(err)
			}
			if want, got := tt.expected, string(result); want != got {
				t.Errorf("expected\n%s\nbut got\n%s", want, got)
			}
		})
	}
}

func TestRunWrongMode(t *testing.T) {

	options := GlobalOptions{
		Required: Required{
			Sequence: "testdata/test.fna",
			Outseq:   os.DevNull,
			Mode:     "unknown",
		},
	}

	err := run(options)
	if err == nil {
		t.Error("expected an error for unknown mode but got none")
	}
}
