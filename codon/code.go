// Package codon stores the standard RNA codon <-> amino acid
// translation tables.
//
// Relevant documentation:
//
//    https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi?chapter=tgencodes#SG1
//
package codon

import (
	"errors"
	"fmt"
	"sort"
)

const (
	// Stop is the amino acid code used for the three stop codons.
	Stop = byte('*')
	// Start is the start codon. It codes for methionine.
	Start = "AUG"
)

var (
	// ErrInvalidCodon is returned when a lookup key is not one of the
	// 64 RNA triplets.
	ErrInvalidCodon = errors.New("invalid codon")
	// ErrUnknownAminoAcid is returned when a lookup key is not one of
	// the 20 amino acid codes or Stop.
	ErrUnknownAminoAcid = errors.New("unknown amino acid")
)

var standard = map[string]byte{
	"UUU": 'F',
	"UCU": 'S',
	"UAU": 'Y',
	"UGU": 'C',
	"UUC": 'F',
	"UCC": 'S',
	"UAC": 'Y',
	"UGC": 'C',
	"UUA": 'L',
	"UCA": 'S',
	"UAA": '*',
	"UGA": '*',
	"UUG": 'L',
	"UCG": 'S',
	"UAG": '*',
	"UGG": 'W',
	"CUU": 'L',
	"CCU": 'P',
	"CAU": 'H',
	"CGU": 'R',
	"CUC": 'L',
	"CCC": 'P',
	"CAC": 'H',
	"CGC": 'R',
	"CUA": 'L',
	"CCA": 'P',
	"CAA": 'Q',
	"CGA": 'R',
	"CUG": 'L',
	"CCG": 'P',
	"CAG": 'Q',
	"CGG": 'R',
	"AUU": 'I',
	"ACU": 'T',
	"AAU": 'N',
	"AGU": 'S',
	"AUC": 'I',
	"ACC": 'T',
	"AAC": 'N',
	"AGC": 'S',
	"AUA": 'I',
	"ACA": 'T',
	"AAA": 'K',
	"AGA": 'R',
	"AUG": 'M',
	"ACG": 'T',
	"AAG": 'K',
	"AGG": 'R',
	"GUU": 'V',
	"GCU": 'A',
	"GAU": 'D',
	"GGU": 'G',
	"GUC": 'V',
	"GCC": 'A',
	"GAC": 'D',
	"GGC": 'G',
	"GUA": 'V',
	"GCA": 'A',
	"GAA": 'E',
	"GGA": 'G',
	"GUG": 'V',
	"GCG": 'A',
	"GAG": 'E',
	"GGG": 'G',
}

// reverse maps each amino acid code (and Stop) to the codons coding
// for it. It is derived from the forward table at init time, so the
// two tables can't drift apart.
var reverse map[byte][]string

func init() {
	reverse = make(map[byte][]string, 21)
	for codon, aa := range standard {
		reverse[aa] = append(reverse[aa], codon)
	}
	// map iteration order is random, sort each group so Codons()
	// output is deterministic
	for _, codons := range reverse {
		sort.Strings(codons)
	}
}

// AminoAcid returns the one-letter amino acid code for the given RNA
// codon, or Stop for a stop codon.
func AminoAcid(codon string) (byte, error) {
	aa, ok := standard[codon]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCodon, codon)
	}
	return aa, nil
}

// Codons returns the sorted set of RNA codons coding for the given
// amino acid (or Stop). The returned slice is a copy and may be
// modified by the caller.
func Codons(aa byte) ([]string, error) {
	codons, ok := reverse[aa]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAminoAcid, aa)
	}
	out := make([]string, len(codons))
	copy(out, codons)
	return out, nil
}

// IsStop reports whether the codon is one of the three stop codons.
func IsStop(codon string) bool {
	return standard[codon] == Stop
}
