package cmd

import (
	"github.com/monitoxx/gcwin/internal/gcwin"
	"github.com/spf13/cobra"
)

// gcCmd is for the GC content of literal sequences
var gcCmd = &cobra.Command{
	Use:                        "gc [sequence] ... [sequenceN]",
	Short:                      "Print the GC percentage and length of sequences",
	Run:                        gcwin.GCCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  gcwin gc GGCC GCAT aatt",
}

func init() {
	RootCmd.AddCommand(gcCmd)
}
