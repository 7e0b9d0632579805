package gcwin

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/cobra"
)

func Test_inputParser_guessInput(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.fa", "b.FASTA.gz", "c.csv", "d.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(">x\nA\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "e.fa"), 0755); err != nil {
		t.Fatal(err)
	}

	p := inputParser{}
	got, err := p.guessInput(dir)
	if err != nil {
		t.Fatal(err)
	}

	abs, _ := filepath.Abs(dir)
	want := []string{
		filepath.Join(abs, "a.fa"),
		filepath.Join(abs, "b.FASTA.gz"),
		filepath.Join(abs, "d.txt"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("guessInput() = %v, want %v", got, want)
	}

	if _, err := p.guessInput(t.TempDir()); err == nil {
		t.Error("guessInput() expected an error for a dir without record files")
	}
}

func Test_parseCmdFlags(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{}
		cmd.Flags().String("gene", "", "")
		cmd.Flags().String("out", "", "")
		cmd.Flags().Int("limit", DefaultSplitLimit, "")
		return cmd
	}

	cmd := newCmd()
	cmd.Flags().Set("gene", "[gene=gag]")
	cmd.Flags().Set("out", "tables")

	got, err := parseCmdFlags(cmd, []string{"a.fa", "b.fa"})
	if err != nil {
		t.Fatal(err)
	}
	want := &Flags{
		in:    []string{"a.fa", "b.fa"},
		gene:  "[gene=gag]",
		out:   "tables",
		limit: DefaultSplitLimit,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseCmdFlags() = %+v, want %+v", got, want)
	}

	if _, err := parseCmdFlags(newCmd(), []string{"a.fa"}); err == nil {
		t.Error("parseCmdFlags() expected an error without a gene")
	}
}
