package seq_test

import (
	"errors"
	"testing"

	"github.com/feliixx/goseqtools/seq"
)

func TestReverseComplement(t *testing.T) {

	rcTests := []struct {
		dna      string
		expected string
	}{
		{dna: "", expected: ""},
		{dna: "A", expected: "T"},
		{dna: "ATGC", expected: "GCAT"},
		{dna: "AAAACCCGGT", expected: "ACCGGGTTTT"},
	}

	for _, tt := range rcTests {
		t.Run(tt.dna, func(t *testing.T) {

			rc, err := seq.ReverseComplement(tt.dna)
			if err != nil {
				t.Error(err)
			}
			if rc != tt.expected {
				t.Errorf("expected %q but got %q", tt.expected, rc)
			}
		})
	}
}

func TestReverseComplementTwiceIsIdentity(t *testing.T) {

	dna := "ATGGTTTAAGCC"

	rc, err := seq.ReverseComplement(dna)
	if err != nil {
		t.Error(err)
	}
	back, err := seq.ReverseComplement(rc)
	if err != nil {
		t.Error(err)
	}
	if back != dna {
		t.Errorf("expected %q but got %q", dna, back)
	}
}

func TestReverseComplementInvalid(t *testing.T) {

	invalidTests := []string{"ATXG", "AUGC", "atgc"}

	for _, dna := range invalidTests {
		t.Run(dna, func(t *testing.T) {
			_, err := seq.ReverseComplement(dna)
			if !errors.Is(err, seq.ErrInvalidNucleotide) {
				t.Errorf("expected ErrInvalidNucleotide but got %v", err)
			}
		})
	}
}

func TestTranscribe(t *testing.T) {

	transcribeTests := []struct {
		dna      string
		expected string
	}{
		{dna: "", expected: ""},
		{dna: "GATGGAACTTGACTACGTAAATT", expected: "GAUGGAACUUGACUACGUAAAUU"},
		{dna: "AUGC", expected: "AUGC"},
	}

	for _, tt := range transcribeTests {
		if got := seq.Transcribe(tt.dna); got != tt.expected {
			t.Errorf("Transcribe(%q): expected %q but got %q", tt.dna, tt.expected, got)
		}
	}
}
