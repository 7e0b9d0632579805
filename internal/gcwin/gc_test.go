package gcwin

import (
	"errors"
	"strings"
	"testing"
)

func TestGCContent(t *testing.T) {
	tests := []struct {
		name       string
		fragment   string
		wantGC     float64
		wantLength int
	}{
		{"all GC", "GGCC", 100, 4},
		{"no GC", "AATT", 0, 4},
		{"half GC", "GCAT", 50, 4},
		{"lower case", "gcat", 50, 4},
		{"mixed case", "gGcC", 100, 4},
		{"surrounding whitespace", "  GCAT\n", 50, 4},
		{"repeating", "GCA", 66.67, 3},
		{"one base", "C", 100, 1},
		{"ambiguous bases count toward length", "GCNN", 50, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gc, length, err := GCContent(tt.fragment)
			if err != nil {
				t.Fatal(err)
			}
			if gc != tt.wantGC {
				t.Errorf("GCContent() gc = %v, want %v", gc, tt.wantGC)
			}
			if length != tt.wantLength {
				t.Errorf("GCContent() length = %v, want %v", length, tt.wantLength)
			}
		})
	}
}

func TestGCContent_bounds(t *testing.T) {
	fragments := []string{
		"A",
		"ATGCGCGTATTAGCGGGCTTTAAAC",
		strings.Repeat("GATTACA", 31),
		"NNNNNNN",
	}
	for _, f := range fragments {
		gc, length, err := GCContent(f)
		if err != nil {
			t.Fatal(err)
		}
		if gc < 0 || gc > 100 {
			t.Errorf("GCContent(%s) = %v, out of [0, 100]", f, gc)
		}
		if length != len(strings.TrimSpace(f)) {
			t.Errorf("GCContent(%s) length = %d, want %d", f, length, len(f))
		}
	}
}

func TestGCContent_empty(t *testing.T) {
	for _, f := range []string{"", "   ", "\n"} {
		if _, _, err := GCContent(f); !errors.Is(err, ErrEmptySequence) {
			t.Errorf("GCContent(%q) err = %v, want ErrEmptySequence", f, err)
		}
	}
}

func Test_gcContent_bases(t *testing.T) {
	gc, _, err := gcContent("GCAT", "G")
	if err != nil {
		t.Fatal(err)
	}
	if gc != 25 {
		t.Errorf("gcContent() = %v, want 25", gc)
	}
}

func Test_roundPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.125, 0.12},
		{0.375, 0.38},
		{2.675, 2.67},
		{100.0 * 2 / 3, 66.67},
		{100.0 / 3, 33.33},
		{42.0, 42.0},
	}
	for _, tt := range tests {
		if got := roundPercent(tt.in); got != tt.want {
			t.Errorf("roundPercent(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
