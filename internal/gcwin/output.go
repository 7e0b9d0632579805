package gcwin

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/biogo/biogo/seq/linear"
	recio "github.com/monitoxx/gcwin/internal/io"
)

// Summary is the analysis-wide output: counts and the shortest length.
type Summary struct {
	Records       int      `json:"records"`
	Windows       int      `json:"windows"`
	MinLength     int      `json:"min_length"`
	Skipped       []string `json:"skipped"`
	BinningErrors []string `json:"binning_errors"`
}

// Summary returns the analysis-wide counts.
func (a *Analysis) Summary() Summary {
	s := Summary{
		Records:       len(a.Sequences),
		Windows:       len(a.Windows),
		MinLength:     a.MinLength,
		Skipped:       append([]string{}, a.Skipped...),
		BinningErrors: []string{},
	}
	for _, err := range a.BinningErrors {
		s.BinningErrors = append(s.BinningErrors, err.Error())
	}
	return s
}

// table is a header and its rows of cells.
type table struct {
	name   string
	header []string
	rows   [][]string
}

// WriteTables writes each table of the analysis to dir as CSV or JSON
// and returns the paths written. With fasta, the extracted sequences are
// also written to sequences.fa.
func WriteTables(dir, format string, a *Analysis, fasta bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir %s: %w", dir, err)
	}

	var written []string
	switch format {
	case "json":
		tables := []struct {
			name string
			v    interface{}
		}{
			{"sequences", a.Sequences},
			{"gc_content", a.GCContent},
			{"windows_lists", a.Profiles},
			{"windows", a.Windows},
			{"heatmap", a.Heatmap.toJSON()},
			{"summary", a.Summary()},
		}
		for _, t := range tables {
			filename := filepath.Join(dir, t.name+".json")
			if err := recio.WriteJSON(filename, t.v); err != nil {
				return written, err
			}
			written = append(written, filename)
		}
	case "csv":
		for _, t := range a.tables() {
			filename := filepath.Join(dir, t.name+".csv")
			if err := writeCSV(filename, t); err != nil {
				return written, err
			}
			written = append(written, filename)
		}
	default:
		return nil, fmt.Errorf("unknown table format %q", format)
	}

	if fasta {
		filename := filepath.Join(dir, "sequences.fa")
		if err := recio.WriteFASTA(filename, a.fastaRecords()...); err != nil {
			return written, err
		}
		written = append(written, filename)
	}

	return written, nil
}

// tables returns the analysis as rows of text cells.
func (a *Analysis) tables() []table {
	sequences := table{name: "sequences", header: []string{"accession", "sequence", "length"}}
	for _, r := range a.Sequences {
		sequences.rows = append(sequences.rows, []string{r.Accession, r.Sequence, strconv.Itoa(r.Length)})
	}

	gc := table{name: "gc_content", header: []string{"accession", "gc_percent", "length"}}
	for _, s := range a.GCContent {
		gc.rows = append(gc.rows, []string{s.Accession, formatPercent(s.GCPercent), strconv.Itoa(s.Length)})
	}

	lists := table{name: "windows_lists", header: []string{"accession", "gc_percent", "gc_percent_random", "position"}}
	for _, p := range a.Profiles {
		lists.rows = append(lists.rows, []string{
			joinStrings(p.Accessions),
			joinFloats(p.GC),
			joinFloats(p.GCRandom),
			joinInts(p.Positions),
		})
	}

	windows := table{name: "windows", header: []string{"accession", "position", "gc_percent", "gc_percent_random", "quartile", "quartile_random"}}
	for _, w := range a.Windows {
		windows.rows = append(windows.rows, []string{
			w.Accession,
			strconv.Itoa(w.Position),
			formatPercent(w.GCPercent),
			formatPercent(w.GCPercentRandom),
			w.Quartile,
			w.QuartileRandom,
		})
	}

	heatmap := table{name: "heatmap", header: []string{"accession"}}
	for _, p := range a.Heatmap.Positions {
		heatmap.header = append(heatmap.header, strconv.Itoa(p))
	}
	for i, accession := range a.Heatmap.Accessions {
		row := []string{accession}
		for _, v := range a.Heatmap.Values[i] {
			if math.IsNaN(v) {
				row = append(row, "")
			} else {
				row = append(row, formatPercent(v))
			}
		}
		heatmap.rows = append(heatmap.rows, row)
	}

	s := a.Summary()
	summary := table{name: "summary", header: []string{"records", "windows", "min_length", "skipped", "binning_errors"}}
	summary.rows = [][]string{{
		strconv.Itoa(s.Records),
		strconv.Itoa(s.Windows),
		strconv.Itoa(s.MinLength),
		joinStrings(s.Skipped),
		joinStrings(s.BinningErrors),
	}}

	return []table{sequences, gc, lists, windows, heatmap, summary}
}

func (a *Analysis) fastaRecords() []*linear.Seq {
	seqs := make([]*linear.Seq, 0, len(a.Sequences))
	for i, r := range a.Sequences {
		desc := fmt.Sprintf("length=%d gc=%s", r.Length, formatPercent(a.GCContent[i].GCPercent))
		seqs = append(seqs, recio.NewSeq(r.Accession, desc, r.Sequence))
	}
	return seqs
}

func writeCSV(filename string, t table) error {
	fd, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer fd.Close()

	w := csv.NewWriter(fd)
	if err := w.Write(t.header); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := w.WriteAll(t.rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func joinStrings(s []string) string {
	return strings.Join(s, ";")
}

func joinFloats(fs []float64) string {
	cells := make([]string, len(fs))
	for i, f := range fs {
		cells[i] = formatPercent(f)
	}
	return strings.Join(cells, ";")
}

func joinInts(is []int) string {
	cells := make([]string, len(is))
	for i, n := range is {
		cells[i] = strconv.Itoa(n)
	}
	return strings.Join(cells, ";")
}
