package gcwin

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"gonum.org/v1/gonum/stat"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	warnColor   = color.New(color.FgYellow)
)

// PrintSummary writes a table of each record's GC content and the mean
// and standard deviation of its window and shuffled-window GC.
func PrintSummary(w io.Writer, a *Analysis) {
	headerColor.Fprintf(w, "%d records, %d windows, shortest sequence %dbp\n", len(a.Sequences), len(a.Windows), a.MinLength)

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "accession\tlength\tgc\twindows\twindow gc\tshuffled gc\t\n")
	for i, p := range a.Profiles {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%d\t%s\t%s\t\n",
			a.GCContent[i].Accession,
			a.GCContent[i].Length,
			a.GCContent[i].GCPercent,
			p.Len(),
			meanStdDev(p.GC),
			meanStdDev(p.GCRandom),
		)
	}
	tw.Flush()

	for _, path := range a.Skipped {
		warnColor.Fprintf(w, "skipped %s\n", path)
	}
	for _, err := range a.BinningErrors {
		warnColor.Fprintf(w, "%v\n", err)
	}
}

// meanStdDev formats the mean and sample standard deviation of values,
// "-" for the deviation of fewer than two values.
func meanStdDev(values []float64) string {
	if len(values) == 0 {
		return "-"
	}
	if len(values) < 2 {
		return fmt.Sprintf("%.2f ± -", values[0])
	}
	mean, std := stat.MeanStdDev(values, nil)
	return fmt.Sprintf("%.2f ± %.2f", mean, std)
}
