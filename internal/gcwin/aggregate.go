package gcwin

import (
	"errors"
	"fmt"

	"github.com/monitoxx/gcwin/config"
)

// WindowRow is one window of one record, the exploded form of a WindowProfile.
type WindowRow struct {
	Accession       string  `json:"accession"`
	Position        int     `json:"position"`
	GCPercent       float64 `json:"gc_percent"`
	GCPercentRandom float64 `json:"gc_percent_random"`

	// Quartile of GCPercent among the record's windows, "" if binning failed
	Quartile string `json:"quartile"`

	// QuartileRandom of GCPercentRandom among the record's windows
	QuartileRandom string `json:"quartile_random"`
}

// Analysis holds every table built from one set of record files.
type Analysis struct {
	// Sequences are the extracted records, in file order
	Sequences []Record

	// MinLength is the length of the shortest sequence, 0 without records
	MinLength int

	// GCContent is the whole-sequence GC content of each record
	GCContent []GCSummary

	// Profiles are the per-record window lists
	Profiles []WindowProfile

	// Windows is Profiles exploded to a row per window, with quartiles
	Windows []WindowRow

	// Heatmap is Windows pivoted to accession by position
	Heatmap *Heatmap

	// Skipped are the files that were missing or unreadable
	Skipped []string

	// BinningErrors are the records whose quartiles were left empty
	BinningErrors []*BinningError
}

// Analyzer runs the extraction, GC and windowing steps over record files.
type Analyzer struct {
	profiler   *Profiler
	gcBases    string
	multiMatch bool
}

// NewAnalyzer returns an Analyzer for the settings.
func NewAnalyzer(conf *config.Config) *Analyzer {
	return &Analyzer{
		profiler:   NewProfiler(conf.WindowSize, conf.GCBases, conf.Seed),
		gcBases:    conf.GCBases,
		multiMatch: conf.MultiMatch,
	}
}

// Analyze runs an Analyzer with 70bp windows over G and C, one record
// per file and a randomly seeded control.
func Analyze(paths []string, geneTag string) (*Analysis, error) {
	a := &Analyzer{
		profiler: DefaultProfiler(),
		gcBases:  config.DefaultGCBases,
	}
	return a.Analyze(paths, geneTag)
}

// Analyze extracts the gene from each file and builds the GC tables.
// Missing files and files without the gene are skipped, so the Analysis
// may hold fewer records than paths, or none.
func (a *Analyzer) Analyze(paths []string, geneTag string) (*Analysis, error) {
	if geneTag == "" {
		return nil, fmt.Errorf("no gene tag, ex: [gene=gag]")
	}

	analysis := &Analysis{}
	for _, path := range paths {
		records, err := a.extract(path, geneTag)
		switch {
		case errors.Is(err, ErrNoMatchingRecord):
			stderr.Debug("no matching record", "path", path, "gene", geneTag)
			continue
		case err != nil:
			stderr.Warn("skipping file", "path", path, "err", err)
			analysis.Skipped = append(analysis.Skipped, path)
			continue
		}

		for _, record := range records {
			if record.Accession == "" || record.Sequence == "" {
				stderr.Debug("skipping record without accession or sequence", "path", path, "accession", record.Accession)
				continue
			}
			if err := a.add(analysis, record); err != nil {
				stderr.Warn("skipping record", "path", path, "accession", record.Accession, "err", err)
			}
		}
	}

	analysis.Windows = explode(analysis.Profiles)
	analysis.BinningErrors = assignQuartiles(analysis.Windows)
	for _, err := range analysis.BinningErrors {
		stderr.Warn("quartiles left empty", "accession", err.Accession, "column", err.Column, "edges", err.Edges)
	}
	analysis.MinLength = minLength(analysis.Sequences)
	analysis.Heatmap = NewHeatmap(analysis.Windows)

	stderr.Info("analyzed records", "files", len(paths), "records", len(analysis.Sequences), "windows", len(analysis.Windows))
	return analysis, nil
}

// extract returns the last matching record in path, or all of them
// with multi-match.
func (a *Analyzer) extract(path, geneTag string) ([]Record, error) {
	if a.multiMatch {
		return ExtractAll(path, geneTag)
	}
	record, err := Extract(path, geneTag)
	if err != nil {
		return nil, err
	}
	return []Record{record}, nil
}

// add the record's rows to the sequence, GC and window tables.
func (a *Analyzer) add(analysis *Analysis, record Record) error {
	gc, length, err := gcContent(record.Sequence, a.gcBases)
	if err != nil {
		return err
	}

	profile, err := a.profiler.Profile(record.Sequence, record.Accession)
	if err != nil {
		return err
	}

	analysis.Sequences = append(analysis.Sequences, record)
	analysis.GCContent = append(analysis.GCContent, GCSummary{
		Accession: record.Accession,
		GCPercent: gc,
		Length:    length,
	})
	analysis.Profiles = append(analysis.Profiles, profile)
	return nil
}

// explode turns each profile's list columns into a row per window,
// keeping record and window order.
func explode(profiles []WindowProfile) []WindowRow {
	n := 0
	for _, p := range profiles {
		n += p.Len()
	}

	rows := make([]WindowRow, 0, n)
	for _, p := range profiles {
		for i := range p.Positions {
			rows = append(rows, WindowRow{
				Accession:       p.Accessions[i],
				Position:        p.Positions[i],
				GCPercent:       p.GC[i],
				GCPercentRandom: p.GCRandom[i],
			})
		}
	}
	return rows
}

// minLength returns the length of the shortest record, 0 if there are none.
func minLength(records []Record) int {
	if len(records) == 0 {
		return 0
	}
	shortest := records[0].Length
	for _, r := range records[1:] {
		shortest = min(shortest, r.Length)
	}
	return shortest
}
