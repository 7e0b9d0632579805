package gcwin

import (
	"errors"
	"reflect"
	"testing"
)

func Test_qcut(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		want      []string
		wantEdges []float64
		wantErr   bool
	}{
		{
			"even split",
			[]float64{1, 2, 3, 4, 5, 6, 7, 8},
			[]string{"Q1", "Q1", "Q2", "Q2", "Q3", "Q3", "Q4", "Q4"},
			[]float64{1, 2.75, 4.5, 6.25, 8},
			false,
		},
		{
			"unsorted",
			[]float64{8, 1, 5, 4},
			[]string{"Q4", "Q1", "Q3", "Q2"},
			[]float64{1, 3.25, 4.5, 5.75, 8},
			false,
		},
		{
			"two values",
			[]float64{10, 20},
			[]string{"Q1", "Q4"},
			[]float64{10, 12.5, 15, 17.5, 20},
			false,
		},
		{
			"ties on an edge",
			[]float64{1, 1, 1, 1, 2, 3, 4, 5},
			nil,
			[]float64{1, 1, 1.5, 3.25, 5},
			true,
		},
		{
			"one value",
			[]float64{42},
			nil,
			[]float64{42, 42, 42, 42, 42},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, edges, err := qcut(tt.values, QuartileLabels)
			if (err != nil) != tt.wantErr {
				t.Fatalf("qcut() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("qcut() = %v, want %v", got, tt.want)
			}
			if !reflect.DeepEqual(edges, tt.wantEdges) {
				t.Errorf("qcut() edges = %v, want %v", edges, tt.wantEdges)
			}
		})
	}
}

func Test_assignQuartiles(t *testing.T) {
	var rows []WindowRow
	for i, gc := range []float64{10, 20, 30, 40} {
		rows = append(rows, WindowRow{Accession: "A1", Position: i * 70, GCPercent: gc, GCPercentRandom: 50})
	}
	for i, gc := range []float64{80, 20, 60, 40} {
		rows = append(rows, WindowRow{Accession: "B2", Position: i * 70, GCPercent: gc, GCPercentRandom: float64(i)})
	}

	errs := assignQuartiles(rows)

	var gotQuartiles, gotRandom []string
	for _, r := range rows {
		gotQuartiles = append(gotQuartiles, r.Quartile)
		gotRandom = append(gotRandom, r.QuartileRandom)
	}

	// quartiles are per record, so both records span Q1 to Q4
	wantQuartiles := []string{"Q1", "Q2", "Q3", "Q4", "Q4", "Q1", "Q3", "Q2"}
	if !reflect.DeepEqual(gotQuartiles, wantQuartiles) {
		t.Errorf("assignQuartiles() quartiles = %v, want %v", gotQuartiles, wantQuartiles)
	}

	// A1's shuffled GC is constant, so only that column of A1 is empty
	wantRandom := []string{"", "", "", "", "Q1", "Q2", "Q3", "Q4"}
	if !reflect.DeepEqual(gotRandom, wantRandom) {
		t.Errorf("assignQuartiles() random quartiles = %v, want %v", gotRandom, wantRandom)
	}

	if len(errs) != 1 {
		t.Fatalf("assignQuartiles() returned %d errors, want 1", len(errs))
	}
	var binErr *BinningError
	if !errors.As(error(errs[0]), &binErr) || binErr.Accession != "A1" || binErr.Column != "gc_percent_random" {
		t.Errorf("assignQuartiles() error = %v, want A1 gc_percent_random", errs[0])
	}
}
