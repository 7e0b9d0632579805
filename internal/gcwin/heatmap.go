package gcwin

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Heatmap is a record by window position grid of mean GC percentage.
// Rows are sorted by accession and columns by position. Cells for
// positions a record has no window at are NaN.
type Heatmap struct {
	Accessions []string
	Positions  []int
	Values     [][]float64
}

// NewHeatmap pivots windows to accession rows and position columns,
// averaging repeated (accession, position) pairs.
func NewHeatmap(rows []WindowRow) *Heatmap {
	cells := make(map[string]map[int][]float64)
	positionSet := make(map[int]bool)
	for _, row := range rows {
		if cells[row.Accession] == nil {
			cells[row.Accession] = make(map[int][]float64)
		}
		cells[row.Accession][row.Position] = append(cells[row.Accession][row.Position], row.GCPercent)
		positionSet[row.Position] = true
	}

	h := &Heatmap{}
	for accession := range cells {
		h.Accessions = append(h.Accessions, accession)
	}
	sort.Strings(h.Accessions)
	for position := range positionSet {
		h.Positions = append(h.Positions, position)
	}
	sort.Ints(h.Positions)

	h.Values = make([][]float64, len(h.Accessions))
	for i, accession := range h.Accessions {
		h.Values[i] = make([]float64, len(h.Positions))
		for j, position := range h.Positions {
			if values, ok := cells[accession][position]; ok {
				h.Values[i][j] = stat.Mean(values, nil)
			} else {
				h.Values[i][j] = math.NaN()
			}
		}
	}
	return h
}

// Value returns the cell for an accession and position, false if it's empty.
func (h *Heatmap) Value(accession string, position int) (float64, bool) {
	i := sort.SearchStrings(h.Accessions, accession)
	if i == len(h.Accessions) || h.Accessions[i] != accession {
		return 0, false
	}
	j := sort.SearchInts(h.Positions, position)
	if j == len(h.Positions) || h.Positions[j] != position {
		return 0, false
	}
	if v := h.Values[i][j]; !math.IsNaN(v) {
		return v, true
	}
	return 0, false
}

// heatmapJSON is the heatmap with empty cells as nulls
type heatmapJSON struct {
	Accessions []string     `json:"accessions"`
	Positions  []int        `json:"positions"`
	Values     [][]*float64 `json:"values"`
}

func (h *Heatmap) toJSON() heatmapJSON {
	out := heatmapJSON{Accessions: h.Accessions, Positions: h.Positions}
	out.Values = make([][]*float64, len(h.Values))
	for i, row := range h.Values {
		out.Values[i] = make([]*float64, len(row))
		for j := range row {
			if !math.IsNaN(row[j]) {
				v := row[j]
				out.Values[i][j] = &v
			}
		}
	}
	return out
}
