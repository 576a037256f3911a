package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"

	"github.com/feliixx/goseqtools/fasta"
	"github.com/feliixx/goseqtools/profile"
	"github.com/feliixx/goseqtools/seq"
	"github.com/feliixx/goseqtools/translate"
)

const (
	version  = "0.1.0"
	toolName = "goseqtools"
)

var log = logging.MustGetLogger(toolName)

// GlobalOptions struct to store command line args
type GlobalOptions struct {
	Required          `group:"required"`
	translate.Options `group:"optional"`
	General           `group:"general"`
}

// Required struct to store required command line args
type Required struct {
	Sequence string `short:"s" long:"sequence" value-name:"<filename>" description:"Nucleotide sequence(s) filename"`
	Outseq   string `short:"o" long:"outseq" value-name:"<filename>" description:"Output filename"`
	Mode     string `short:"m" long:"mode" value-name:"<mode>" description:"Operation to run. Possible values:\n translate: translate each sequence to the corresponding protein\n consensus: consensus strand and profile matrix of aligned sequences\n revcomp: reverse complement of each sequence\n" default:"translate"`
}

// General struct to store general command line args
type General struct {
	Verbose bool `short:"V" long:"verbose" description:"Print debug information"`
	Help    bool `short:"h" long:"help" description:"Show this help message"`
	Version bool `short:"v" long:"version" description:"Print the tool version and exit"`
}

func setupLogging(verbose bool) {

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetBackend(backend)
	logging.SetFormatter(logging.MustStringFormatter(`%{message}`))

	level := logging.INFO
	if verbose {
		level = logging.DEBUG
	}
	logging.SetLevel(level, toolName)
}

func run(options GlobalOptions) error {

	if options.Sequence == "" {
		return fmt.Errorf("missing required parameter -s | -sequence, try %s --help for details", toolName)
	}
	if options.Outseq == "" {
		return fmt.Errorf("missing required parameter -o | -outseq, try %s --help for details", toolName)
	}

	in, err := os.Open(options.Sequence)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(options.Outseq)
	if err != nil {
		return err
	}
	defer out.Close()

	switch options.Mode {
	case "translate":
		return translate.TranslateFasta(in, out, options.Options)
	case "consensus":
		return writeConsensus(in, out)
	case "revcomp":
		return writeReverseComplement(in, out)
	default:
		return fmt.Errorf("wrong value for -m | --mode parameter: %s", options.Mode)
	}
}

func writeConsensus(in io.Reader, out io.Writer) error {

	records, err := fasta.Parse(in)
	if err != nil {
		return err
	}
	log.Debugf("building profile from %d strands", len(records))

	m, err := profile.Build(records.Sequences())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n%s", m.Consensus(), m)
	return err
}

func writeReverseComplement(in io.Reader, out io.Writer) error {

	records, err := fasta.Parse(in)
	if err != nil {
		return err
	}
	log.Debugf("reverse complementing %d sequences", len(records))

	for i, r := range records {
		rc, err := seq.ReverseComplement(r.Sequence)
		if err != nil {
			return fmt.Errorf("fail to reverse complement sequence %q: %w", r.Name, err)
		}
		records[i].Sequence = rc
	}
	_, err = io.WriteString(out, records.String())
	return err
}

func main() {

	var options GlobalOptions
	p := flags.NewParser(&options, flags.Default&^flags.HelpFlag)
	_, err := p.Parse()
	if err != nil {
		fmt.Printf("wrong arguments: %v, try %s --help for more informations\n", err, toolName)
		os.Exit(1)
	}
	if options.Help {
		fmt.Printf("%s version %s\n\n", toolName, version)
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if options.Version {
		fmt.Printf("%s version %s\n", toolName, version)
		os.Exit(0)
	}

	setupLogging(options.Verbose)

	start := time.Now()
	err = run(options)
	if err != nil {
		log.Errorf("fail to process file:\n%v", err)
		os.Exit(1)
	}
	log.Debugf("done in %v", time.Since(start))
}
