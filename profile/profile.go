// Package profile builds per-position nucleotide profiles over
// aligned DNA strands and derives consensus strands from them.
package profile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Nucleotides lists the DNA alphabet in the fixed order used to scan
// profile rows. Consensus tie-breaking depends on this order: the
// first nucleotide to reach the maximum count wins.
var Nucleotides = [4]byte{'A', 'C', 'G', 'T'}

// ErrDimensionMismatch is returned when the input strands don't all
// share the same length and DNA alphabet.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Matrix is a 4 x n profile of a collection of aligned strands of
// length n: row(nt)[i] counts the occurrences of nucleotide nt at
// position i across all strands.
//
// For every position, the counts of the four rows sum to the number
// of strands the matrix was built from.
type Matrix struct {
	rows map[byte][]int
	n    int
}

// Build counts nucleotide occurrences per position over a non-empty
// collection of equal-length DNA strands.
//
// A length mismatch or a symbol outside the DNA alphabet fails with
// ErrDimensionMismatch, it never silently truncates or skips.
func Build(strands []string) (*Matrix, error) {

	if len(strands) == 0 {
		return nil, fmt.Errorf("%w: no strand provided", ErrDimensionMismatch)
	}
	n := len(strands[0])
	if n == 0 {
		return nil, fmt.Errorf("%w: empty strand", ErrDimensionMismatch)
	}

	m := &Matrix{
		rows: make(map[byte][]int, len(Nucleotides)),
		n:    n,
	}
	for _, nt := range Nucleotides {
		m.rows[nt] = make([]int, n)
	}

	for i, strand := range strands {

		if len(strand) != n {
			return nil, fmt.Errorf("%w: strand %d has length %d, expected %d", ErrDimensionMismatch, i, len(strand), n)
		}
		for pos := 0; pos < n; pos++ {

			row, ok := m.rows[strand[pos]]
			if !ok {
				return nil, fmt.Errorf("%w: strand %d has invalid nucleotide %q at position %d", ErrDimensionMismatch, i, strand[pos], pos)
			}
			row[pos]++
		}
	}
	return m, nil
}

// Len returns the strand length n.
func (m *Matrix) Len() int {
	return m.n
}

// Row returns the count row for nucleotide nt, or nil if nt is not
// one of A, C, G, T. The returned slice is the matrix's own storage
// and must not be modified.
func (m *Matrix) Row(nt byte) []int {
	return m.rows[nt]
}

// Consensus returns the consensus strand of the profile: at each
// position, the nucleotide with the strictly greatest count, scanning
// in Nucleotides order so ties resolve to the first nucleotide to
// reach the maximum. A position where all counts are zero yields '-'.
func (m *Matrix) Consensus() string {

	consensus := make([]byte, m.n)
	for pos := 0; pos < m.n; pos++ {

		best := byte('-')
		max := 0
		for _, nt := range Nucleotides {
			if count := m.rows[nt][pos]; count > max {
				max = count
				best = nt
			}
		}
		consensus[pos] = best
	}
	return string(consensus)
}

// String renders the profile with one "A: 5 1 0" count line per
// nucleotide, in Nucleotides order.
func (m *Matrix) String() string {

	var b strings.Builder
	for _, nt := range Nucleotides {
		b.WriteByte(nt)
		b.WriteByte(':')
		for _, count := range m.rows[nt] {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(count))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
