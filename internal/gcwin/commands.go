package gcwin

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/biogo/biogo/seq/linear"
	"github.com/monitoxx/gcwin/config"
	recio "github.com/monitoxx/gcwin/internal/io"
	"github.com/spf13/cobra"
)

// AnalyzeCmd takes a cobra command (with its flags) and writes the GC
// tables for the record files passed as arguments.
func AnalyzeCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	SetLogLevel(conf.Level())

	flags, err := parseCmdFlags(cmd, args)
	if err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	analysis, err := NewAnalyzer(conf).Analyze(flags.in, flags.gene)
	if err != nil {
		stderr.Fatal(err)
	}
	if len(analysis.Sequences) == 0 {
		stderr.Fatal("no records found", "gene", flags.gene, "files", len(flags.in))
	}

	written, err := WriteTables(flags.out, conf.Format, analysis, flags.fasta)
	if err != nil {
		stderr.Fatal(err)
	}

	PrintSummary(os.Stdout, analysis)
	stderr.Info("wrote tables", "dir", flags.out, "files", len(written), "format", conf.Format)
}

// ExtractCmd writes the records holding the gene in each file to stdout as FASTA.
func ExtractCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	SetLogLevel(conf.Level())

	flags, err := parseCmdFlags(cmd, args)
	if err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	var seqs []*linear.Seq
	for _, path := range flags.in {
		var records []Record
		if conf.MultiMatch {
			records, err = ExtractAll(path, flags.gene)
		} else {
			var record Record
			record, err = Extract(path, flags.gene)
			records = []Record{record}
		}
		if err != nil {
			stderr.Warn("skipping file", "path", path, "err", err)
			continue
		}

		for _, r := range records {
			seqs = append(seqs, recio.NewSeq(r.Accession, fmt.Sprintf("length=%d", r.Length), r.Sequence))
		}
	}

	if err := recio.FprintFASTA(os.Stdout, seqs...); err != nil {
		stderr.Fatal(err)
	}
}

// GCCmd prints the GC percentage and length of each sequence argument.
func GCCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	SetLogLevel(conf.Level())

	if len(args) < 1 {
		cmd.Help()
		stderr.Fatal("no sequence passed")
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "gc\tlength\t\n")
	for _, seq := range args {
		gc, length, err := gcContent(seq, conf.GCBases)
		if err != nil {
			stderr.Fatal("failed to measure GC content", "sequence", seq, "err", err)
		}
		fmt.Fprintf(tw, "%.2f\t%d\t\n", gc, length)
	}
	tw.Flush()
}

// SplitCmd splits a bulk multi-record file into single-record files
// that can be passed to 'gcwin analyze'.
func SplitCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	SetLogLevel(conf.Level())

	if len(args) != 1 {
		cmd.Help()
		stderr.Fatal("pass one bulk record file")
	}

	flags, err := parseCmdFlags(cmd, args)
	if err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	written, err := Split(flags.in[0], flags.gene, flags.out, flags.limit)
	if err != nil {
		stderr.Fatal(err)
	}
	for _, path := range written {
		fmt.Println(path)
	}
}
