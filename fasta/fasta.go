// Package fasta reads and writes named sequences in FASTA format.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// max size of a single input line
	maxLineSize = 10 * 1024 * 1024

	// max line size for sequence output
	wrapSize = 60
)

// Record is a single named sequence.
type Record struct {
	Name     string
	Sequence string
}

// Records stores multiple records, e.g. a sequence alignment.
type Records []Record

// Parse reads FASTA records from r.
//
// fasta format is:
//
// >sequenceID some comments on sequence
// ACAGGCAGAGACACGACAGACGACGACACAGGAGCAGACAGCAGCAGACGACCACATATT
// TTTGCGGTCACATGACGACTTCGGCAGCGA
//
// see https://blast.ncbi.nlm.nih.gov/Blast.cgi?CMD=Web&PAGE_TYPE=BlastDocs&DOC_TYPE=BlastHelp
// section 1 for details
func Parse(r io.Reader) (Records, error) {

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var records Records
	for scanner.Scan() {

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			records = append(records, Record{Name: strings.TrimSpace(line[1:])})
			continue
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("sequence without fasta header: %q", line)
		}
		records[len(records)-1].Sequence += line
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no fasta record found")
	}
	return records, nil
}

// ParseFile reads FASTA records from the named file.
func ParseFile(path string) (Records, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Sequences returns the sequences of all records, in order.
func (records Records) Sequences() []string {
	seqs := make([]string, len(records))
	for i, r := range records {
		seqs[i] = r.Sequence
	}
	return seqs
}

// Wrap splits seq into lines of at most n characters.
func Wrap(seq string, n int) string {
	var b strings.Builder
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		b.WriteString(seq[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns the record in FASTA format, sequence wrapped at 60
// characters.
func (r Record) String() string {
	return ">" + r.Name + "\n" + Wrap(r.Sequence, wrapSize)
}

// String returns all records in FASTA format.
func (records Records) String() string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.String())
	}
	return b.String()
}
