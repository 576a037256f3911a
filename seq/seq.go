// Package seq implements DNA strand utilities.
package seq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNucleotide is returned when a strand contains a symbol
// outside the DNA alphabet.
var ErrInvalidNucleotide = errors.New("invalid nucleotide")

// complementary nucleotides:
//   A <-> T
//   C <-> G
// 0 marks a byte outside the DNA alphabet
var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
}

// ReverseComplement returns the reverse complement of a DNA strand:
// each nucleotide replaced by its complement, read back to front.
func ReverseComplement(dna string) (string, error) {
	out := make([]byte, len(dna))
	for i := 0; i < len(dna); i++ {
		pos := len(dna) - 1 - i
		c := complement[dna[pos]]
		if c == 0 {
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidNucleotide, dna[pos], pos)
		}
		out[i] = c
	}
	return string(out), nil
}

// Transcribe returns the RNA transcript of a DNA strand (T -> U).
// A strand already in the RNA alphabet is returned unchanged.
func Transcribe(dna string) string {
	return strings.Replace(dna, "T", "U", -1)
}
