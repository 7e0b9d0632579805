package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// LineWidth is the number of bases per line in written FASTA files.
const LineWidth = 60

// NewSeq makes a DNA record with an ID and description.
func NewSeq(id, desc, seq string) *linear.Seq {
	s := linear.NewSeq(id, alphabet.BytesToLetters([]byte(seq)), alphabet.DNA)
	s.Desc = desc
	return s
}

// WriteFASTA writes the records to filename, wrapping sequence lines.
func WriteFASTA(filename string, seqs ...*linear.Seq) error {
	fd, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer fd.Close()

	if err := FprintFASTA(fd, seqs...); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// FprintFASTA writes the records to w, wrapping sequence lines.
func FprintFASTA(w io.Writer, seqs ...*linear.Seq) error {
	buf := bufio.NewWriter(w)
	out := fasta.NewWriter(buf, LineWidth)
	for _, s := range seqs {
		if _, err := out.Write(s); err != nil {
			return fmt.Errorf("failed to write %s: %w", s.ID, err)
		}
	}
	return buf.Flush()
}

// WriteJSON serializes v, indented, to filename.
func WriteJSON(filename string, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return fmt.Errorf("failed to write the output: %w", err)
	}
	return nil
}
