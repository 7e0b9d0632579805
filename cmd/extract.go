package cmd

import (
	"github.com/monitoxx/gcwin/internal/gcwin"
	"github.com/spf13/cobra"
)

// extractCmd is for printing the gene's records from record files
var extractCmd = &cobra.Command{
	Use:                        "extract [file] ... [fileN]",
	Short:                      "Extract a gene's sequence from record files",
	Run:                        gcwin.ExtractCmd,
	PreRunE:                    bindFlags("multi-match"),
	SuggestionsMinimumDistance: 2,
	Example:                    `  gcwin extract --gene "[gene=gag]" AB098330.fa`,
	Long: `Extract the sequence of a gene from each record file and write it to stdout
as FASTA, named by accession. Only the last matching record of a file is written
unless --multi-match is set.`,
}

// set flags
func init() {
	extractCmd.Flags().StringP("gene", "g", "", "gene tag as written in the headers, ex: [gene=gag]")
	extractCmd.Flags().BoolP("multi-match", "m", false, "write every matching record in a file, not just the last")

	extractCmd.MarkFlagRequired("gene")

	RootCmd.AddCommand(extractCmd)
}
