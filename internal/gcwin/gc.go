package gcwin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/monitoxx/gcwin/config"
)

// ErrEmptySequence is returned for GC content of a zero length fragment
var ErrEmptySequence = errors.New("empty sequence")

// GCSummary is the GC content of a record's whole sequence.
type GCSummary struct {
	Accession string  `json:"accession"`
	GCPercent float64 `json:"gc_percent"`
	Length    int     `json:"length"`
}

// GCContent returns the percentage of G and C bases in a fragment,
// rounded to 2 decimal places, and the fragment's length. Case and
// surrounding whitespace are ignored.
func GCContent(fragment string) (float64, int, error) {
	return gcContent(fragment, config.DefaultGCBases)
}

// gcContent counts any of bases (upper case) as GC.
func gcContent(fragment, bases string) (float64, int, error) {
	fragment = strings.ToUpper(strings.TrimSpace(fragment))
	if len(fragment) == 0 {
		return 0, 0, ErrEmptySequence
	}

	gc := countBases(fragment, bases)
	return roundPercent(100 * (float64(gc) / float64(len(fragment)))), len(fragment), nil
}

// roundPercent rounds to 2 decimal places. Ties on the binary value
// go to even: 0.125 -> 0.12, 0.375 -> 0.38.
func roundPercent(pct float64) float64 {
	rounded, err := strconv.ParseFloat(fmt.Sprintf("%.2f", pct), 64)
	if err != nil {
		return pct
	}
	return rounded
}

// countBases returns the number of any of bases in seq.
func countBases(seq, bases string) int {
	n := 0
	for i := 0; i < len(seq); i++ {
		if strings.IndexByte(bases, seq[i]) >= 0 {
			n++
		}
	}
	return n
}
