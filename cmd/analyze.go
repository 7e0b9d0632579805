package cmd

import (
	"github.com/monitoxx/gcwin/internal/gcwin"
	"github.com/spf13/cobra"
)

// analyzeCmd is for building the GC tables of a gene across record files
var analyzeCmd = &cobra.Command{
	Use:                        "analyze [file] ... [fileN]",
	Short:                      "Profile a gene's GC content across record files",
	Run:                        gcwin.AnalyzeCmd,
	PreRunE:                    bindFlags("window-size", "seed", "multi-match", "format"),
	SuggestionsMinimumDistance: 2,
	Example:                    `  gcwin analyze --gene "[gene=gag]" --out gag AB098330.fa AF033819.fa M15654.fa.gz`,
	Long: `
Extract the gene from each record file and profile its GC content.

The gene tag is matched as a substring of each header line, so it must be
written as it is in the files, ex: "[gene=gag]". The accession of a record is
the text between the first '|' and the next '_' in its header.

Each sequence is split into non-overlapping windows (70bp by default, the last
may be shorter). Each window's GC percentage is measured, as is the same window
of one random shuffle of the whole sequence. Windows are binned into quartiles
within their own record.

Tables written to the output directory:
  sequences       accession, sequence, length
  gc_content      accession, whole-sequence gc_percent, length
  windows_lists   one row per record with list columns
  windows         one row per window with quartile and quartile_random
  heatmap         accession by window position, mean gc_percent
  summary         record and window counts, the shortest length, skipped
                  files and records that couldn't be binned

If no files are passed, record files in the working directory are used.`,
	Aliases: []string{"profile"},
}

// set flags
func init() {
	analyzeCmd.Flags().StringP("gene", "g", "", "gene tag as written in the headers, ex: [gene=gag]")
	analyzeCmd.Flags().StringP("out", "o", "gcwin-output", "output directory for the tables")
	analyzeCmd.Flags().StringP("format", "f", "csv", "table format: csv or json")
	analyzeCmd.Flags().IntP("window-size", "w", 70, "bases per window")
	analyzeCmd.Flags().Int64("seed", 0, "seed for the shuffled control, 0 for a random seed")
	analyzeCmd.Flags().BoolP("multi-match", "m", false, "use every matching record in a file, not just the last")
	analyzeCmd.Flags().Bool("fasta", false, "also write the extracted sequences to sequences.fa")

	analyzeCmd.MarkFlagRequired("gene")

	RootCmd.AddCommand(analyzeCmd)
}
