package gcwin

import (
	"fmt"
	"math/rand/v2"

	"github.com/monitoxx/gcwin/config"
)

// WindowProfile is the GC content of each window of a record, in the
// shape of one table row with list columns. The slices are parallel
// and in window order.
type WindowProfile struct {
	// Accessions holds the record's accession once per window
	Accessions []string `json:"accessions"`

	// Positions are the 0-based starts of each window
	Positions []int `json:"positions"`

	// GC is the GC percentage of each window of the sequence
	GC []float64 `json:"gc_percent"`

	// GCRandom is the GC percentage of the same window of the shuffled sequence
	GCRandom []float64 `json:"gc_percent_random"`
}

// Len returns the number of windows in the profile.
func (w WindowProfile) Len() int {
	return len(w.Positions)
}

// Profiler splits sequences into non-overlapping windows and measures
// their GC content, and that of a shuffled control.
type Profiler struct {
	// WindowSize is the number of bases per window. The last window
	// of a sequence may be shorter
	WindowSize int

	// GCBases are the upper case bases counted as GC
	GCBases string

	// Rand shuffles the control sequence
	Rand *rand.Rand
}

// NewProfiler returns a Profiler. A seed of 0 draws the shuffles from
// a randomly seeded source, any other seed makes them reproducible.
func NewProfiler(windowSize int, gcBases string, seed int64) *Profiler {
	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(uint64(seed), uint64(seed))
	}

	return &Profiler{
		WindowSize: windowSize,
		GCBases:    gcBases,
		Rand:       rand.New(src),
	}
}

// DefaultProfiler returns a Profiler with 70bp windows over G and C.
func DefaultProfiler() *Profiler {
	return NewProfiler(config.DefaultWindowSize, config.DefaultGCBases, 0)
}

// Shuffle returns a uniform random permutation of seq.
func (p *Profiler) Shuffle(seq string) string {
	b := []byte(seq)
	p.Rand.Shuffle(len(b), func(i, j int) {
		b[i], b[j] = b[j], b[i]
	})
	return string(b)
}

// Profile measures the GC content of each window of seq. The control is a
// single shuffle of the whole sequence, sliced at the same windows, so its
// overall composition matches seq.
func (p *Profiler) Profile(seq, accession string) (WindowProfile, error) {
	if p.WindowSize < 1 {
		return WindowProfile{}, fmt.Errorf("window size must be positive, got %d", p.WindowSize)
	}

	n := (len(seq) + p.WindowSize - 1) / p.WindowSize
	profile := WindowProfile{
		Accessions: make([]string, 0, n),
		Positions:  make([]int, 0, n),
		GC:         make([]float64, 0, n),
		GCRandom:   make([]float64, 0, n),
	}

	shuffled := p.Shuffle(seq)
	for start := 0; start < len(seq); start += p.WindowSize {
		end := min(start+p.WindowSize, len(seq))

		gc, _, err := gcContent(seq[start:end], p.GCBases)
		if err != nil {
			return WindowProfile{}, fmt.Errorf("failed to measure window %d of %s: %w", start, accession, err)
		}
		gcRandom, _, err := gcContent(shuffled[start:end], p.GCBases)
		if err != nil {
			return WindowProfile{}, fmt.Errorf("failed to measure shuffled window %d of %s: %w", start, accession, err)
		}

		profile.Accessions = append(profile.Accessions, accession)
		profile.Positions = append(profile.Positions, start)
		profile.GC = append(profile.GC, gc)
		profile.GCRandom = append(profile.GCRandom, gcRandom)
	}

	return profile, nil
}
