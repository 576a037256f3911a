package translate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/feliixx/goseqtools/fasta"
	"github.com/feliixx/goseqtools/seq"
)

// Options struct to store command line args for the translate mode
type Options struct {
	NumWorker int `short:"n" long:"numcpu" value-name:"<n>" description:"Number of threads to use, default is number of CPU"`
}

// TranslateFasta reads a fasta file and translates each sequence to
// the corresponding protein sequence. DNA input is transcribed to RNA
// before translation, so both alphabets are accepted.
//
// Records are translated concurrently but written to out in input
// order.
func TranslateFasta(in io.Reader, out io.Writer, options Options) error {

	records, err := fasta.Parse(in)
	if err != nil {
		return err
	}

	numWorker := options.NumWorker
	if numWorker == 0 {
		numWorker = runtime.NumCPU()
	}

	proteins := make([]string, len(records))

	jobs := make(chan int, len(records))
	errs := make(chan error, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(numWorker)

	for nWorker := 0; nWorker < numWorker; nWorker++ {

		go func() {

			defer wg.Done()

			for i := range jobs {

				select {
				case <-ctx.Done():
					return
				default:
				}

				protein, err := Translate(seq.Transcribe(records[i].Sequence))
				if err != nil {
					select {
					case errs <- fmt.Errorf("fail to translate sequence %q: %w", records[i].Name, err):
					default:
					}
					cancel()
					return
				}
				proteins[i] = protein
			}
		}()
	}

	for i := range records {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	select {
	case err := <-errs:
		return err
	default:
	}

	buf := bytes.NewBuffer(make([]byte, 0, 4096))
	for i, r := range records {
		buf.WriteString(fasta.Record{Name: r.Name, Sequence: proteins[i]}.String())
	}
	_, err = out.Write(buf.Bytes())
	return err
}
