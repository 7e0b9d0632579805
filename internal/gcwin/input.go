package gcwin

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// recordExts are the extensions of record files guessed as input
var recordExts = []string{".fa", ".fasta", ".fna", ".ffn", ".txt"}

// Flags contains parsed cobra Flags like "gene", "out", etc that are used by multiple commands.
type Flags struct {
	// the record files to read
	in []string

	// the gene tag to match in headers, ex: [gene=gag]
	gene string

	// the directory (or file) to write output to
	out string

	// whether to also write the extracted sequences as FASTA
	fasta bool

	// the number of records to split from a bulk file
	limit int
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// parseCmdFlags gathers the record paths, gene tag, out path, etc from a cobra cmd object.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, error) {
	var err error
	fs := &Flags{}
	p := inputParser{}

	if fs.gene, err = cmd.Flags().GetString("gene"); err != nil || strings.TrimSpace(fs.gene) == "" {
		return nil, fmt.Errorf("no gene tag set, ex: --gene \"[gene=gag]\"")
	}

	fs.in = args
	if len(fs.in) == 0 {
		if fs.in, err = p.guessInput("."); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Lookup("out") != nil {
		fs.out, _ = cmd.Flags().GetString("out")
	}
	if cmd.Flags().Lookup("fasta") != nil {
		fs.fasta, _ = cmd.Flags().GetBool("fasta")
	}
	if cmd.Flags().Lookup("limit") != nil {
		fs.limit, _ = cmd.Flags().GetInt("limit")
	}

	return fs, nil
}

// guessInput returns the record files in dir. Is used if the user
// hasn't passed any files.
func (p *inputParser) guessInput(dir string) (in []string, err error) {
	dir, _ = filepath.Abs(dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := strings.TrimSuffix(strings.ToLower(entry.Name()), ".gz")
		for _, ext := range recordExts {
			if filepath.Ext(name) == ext {
				in = append(in, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}

	if len(in) == 0 {
		return nil, fmt.Errorf("failed: no input files passed and no record files found in %s", dir)
	}
	return in, nil
}
