package gcwin

import (
	"fmt"
	"math"
	"sort"
)

// QuartileLabels name the equal-frequency bins, lowest first
var QuartileLabels = []string{"Q1", "Q2", "Q3", "Q4"}

// BinningError is returned when a record's values can't be split into
// four bins with distinct edges, ex: too few windows or too many ties.
type BinningError struct {
	// Accession of the record that couldn't be binned
	Accession string

	// Column that was being binned: gc_percent or gc_percent_random
	Column string

	// Edges are the quantile bin edges, some of them repeated
	Edges []float64
}

func (e *BinningError) Error() string {
	return fmt.Sprintf("failed to bin %s of %s into quartiles: bin edges %v are not unique", e.Column, e.Accession, e.Edges)
}

// qcut splits values into len(labels) equal-frequency bins and returns the
// label of each value. Edges are linearly interpolated quantiles; the
// first bin is closed and the rest are right-closed: [e0, e1], (e1, e2]...
// Edges that aren't strictly increasing are an error.
func qcut(values []float64, labels []string) ([]string, []float64, error) {
	if len(values) == 0 {
		return nil, nil, fmt.Errorf("no values to bin")
	}

	edges := quantileEdges(values, len(labels))
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return nil, edges, fmt.Errorf("bin edges %v are not unique", edges)
		}
	}

	binned := make([]string, len(values))
	for i, v := range values {
		bin := sort.SearchFloat64s(edges, v) // first edge >= v
		if bin == 0 {
			bin = 1 // v == edges[0] is in the first bin
		}
		binned[i] = labels[bin-1]
	}
	return binned, edges, nil
}

// quantileEdges returns the q+1 edges at quantiles 0, 1/q, ... 1.
func quantileEdges(values []float64, q int) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	edges := make([]float64, q+1)
	for i := range edges {
		edges[i] = quantile(sorted, float64(i)/float64(q))
	}
	return edges
}

// quantile of sorted values at p, interpolating linearly between the
// closest ranks at (n-1)*p.
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	below := sorted[int(lo)]
	above := sorted[min(int(lo)+1, len(sorted)-1)]

	t := h - lo
	diff := above - below
	if t >= 0.5 {
		return above - diff*(1-t)
	}
	return below + diff*t
}

// assignQuartiles labels each window with the quartile of its GC and
// shuffled GC within its own record. Records whose values can't be binned
// keep empty labels in that column and are returned as errors.
func assignQuartiles(rows []WindowRow) []*BinningError {
	var order []string
	groups := make(map[string][]int)
	for i, row := range rows {
		if _, seen := groups[row.Accession]; !seen {
			order = append(order, row.Accession)
		}
		groups[row.Accession] = append(groups[row.Accession], i)
	}

	var errs []*BinningError
	for _, accession := range order {
		idx := groups[accession]
		gc := make([]float64, len(idx))
		gcRandom := make([]float64, len(idx))
		for j, i := range idx {
			gc[j] = rows[i].GCPercent
			gcRandom[j] = rows[i].GCPercentRandom
		}

		if labels, edges, err := qcut(gc, QuartileLabels); err != nil {
			errs = append(errs, &BinningError{Accession: accession, Column: "gc_percent", Edges: edges})
		} else {
			for j, i := range idx {
				rows[i].Quartile = labels[j]
			}
		}

		if labels, edges, err := qcut(gcRandom, QuartileLabels); err != nil {
			errs = append(errs, &BinningError{Accession: accession, Column: "gc_percent_random", Edges: edges})
		} else {
			for j, i := range idx {
				rows[i].QuartileRandom = labels[j]
			}
		}
	}
	return errs
}
