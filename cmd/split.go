package cmd

import (
	"github.com/monitoxx/gcwin/internal/gcwin"
	"github.com/spf13/cobra"
)

// splitCmd is for slicing a bulk multi-record file into files for 'gcwin analyze'
var splitCmd = &cobra.Command{
	Use:                        "split [file]",
	Short:                      "Split a bulk multi-record file into single-record files",
	Run:                        gcwin.SplitCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  gcwin split --gene gag --limit 10 --out gag sequences.fasta",
	Long: `Split the first records of a bulk FASTA file into their own files,
output_1.txt, output_2.txt..., each with a header 'gcwin analyze' reads:

  >|<name>_ [gene=<gene>]

where <name> is the header text before its first ':'. Analyze the files
with --gene "[gene=<gene>]".`,
}

func init() {
	splitCmd.Flags().StringP("gene", "g", "", "gene name to tag the records with, ex: gag")
	splitCmd.Flags().StringP("out", "o", ".", "output directory")
	splitCmd.Flags().IntP("limit", "l", gcwin.DefaultSplitLimit, "maximum number of records to write")

	splitCmd.MarkFlagRequired("gene")

	RootCmd.AddCommand(splitCmd)
}
