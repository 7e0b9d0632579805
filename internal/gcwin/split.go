package gcwin

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	recio "github.com/monitoxx/gcwin/internal/io"
)

// DefaultSplitLimit is the number of records split out of a bulk file
const DefaultSplitLimit = 10

// the name of a bulk record is the header before its first colon: >MN908947.3:266-21555 ...
var splitNameRegex = regexp.MustCompile(`^(.+?):`)

// Split writes the first limit records of a multi-record file to their
// own files, output_1.txt, output_2.txt... in outDir. Each is given a
// header the extractor reads: ">|<name>_ [gene=<gene>]". Records without
// a sequence are skipped. It returns the paths written.
func Split(path, gene, outDir string, limit int) ([]string, error) {
	if limit < 1 {
		return nil, fmt.Errorf("split limit must be positive, got %d", limit)
	}

	seqs, err := recio.ReadFASTA(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir %s: %w", outDir, err)
	}

	var written []string
	for _, s := range seqs {
		if len(written) >= limit {
			break
		}

		seq := recio.Letters(s)
		if seq == "" {
			stderr.Debug("skipping record without sequence", "header", recio.Header(s))
			continue
		}

		filename := filepath.Join(outDir, fmt.Sprintf("output_%d.txt", len(written)+1))
		record := recio.NewSeq("|"+splitName(recio.Header(s))+"_", fmt.Sprintf("[gene=%s]", gene), strings.ToUpper(seq))
		if err := recio.WriteFASTA(filename, record); err != nil {
			return written, err
		}
		written = append(written, filename)
	}

	stderr.Info("split records", "path", path, "records", len(seqs), "written", len(written))
	return written, nil
}

// splitName returns the header text before the first colon, or its
// first field if there's no colon.
func splitName(header string) string {
	if m := splitNameRegex.FindStringSubmatch(header); m != nil {
		return m[1]
	}
	if fields := strings.Fields(header); len(fields) > 0 {
		return fields[0]
	}
	return header
}
