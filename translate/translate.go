// Package translate converts messenger RNA to protein using the
// standard genetic code.
package translate

import (
	"strings"

	"github.com/feliixx/goseqtools/codon"
)

// Translate translates an mRNA strand into a protein chain, starting
// from the first start codon.
//
// The open reading frame runs from the first occurrence of "AUG" to
// the end of the strand, read as consecutive non-overlapping codons.
// The start codon itself is translated (to 'M'), a stop codon ends
// the chain without being appended, and a trailing incomplete codon
// is dropped. If the strand contains no start codon, the protein
// chain is empty.
func Translate(rna string) (string, error) {

	start := strings.Index(rna, codon.Start)
	if start == -1 {
		return "", nil
	}

	var protein strings.Builder
	for pos := start; pos+3 <= len(rna); pos += 3 {

		aa, err := codon.AminoAcid(rna[pos : pos+3])
		if err != nil {
			return "", err
		}
		if aa == codon.Stop {
			break
		}
		protein.WriteByte(aa)
	}
	return protein.String(), nil
}
