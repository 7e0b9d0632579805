package gcwin

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"strings"

	recio "github.com/monitoxx/gcwin/internal/io"
)

var (
	// ErrFileNotFound is returned for record files that don't exist
	ErrFileNotFound = errors.New("file not found")

	// ErrNoMatchingRecord is returned when no header holds the gene tag
	ErrNoMatchingRecord = errors.New("no matching record")

	// accession is between a pipe and the next underscore: >lcl|AB098330.1_cds...
	accessionRegex = regexp.MustCompile(`\|(.+?)_`)
)

// maxLineLength bounds a single line, unwrapped genomes included
const maxLineLength = 1 << 28

// Record is a gene's sequence, from one header block, and the
// accession parsed from that header.
type Record struct {
	// Accession is the GenBank code, ex: AB098330.1
	Accession string `json:"accession"`

	// Sequence in upper case, its lines joined
	Sequence string `json:"sequence"`

	// Length of Sequence
	Length int `json:"length"`
}

func newRecord(accession, seq string) Record {
	seq = strings.ToUpper(seq)
	return Record{Accession: accession, Sequence: seq, Length: len(seq)}
}

// Extract returns the gene's record from a file. The gene tag, ex:
// "[gene=gag]", is matched as a substring of each header line. If
// several headers match, the last of them is returned.
func Extract(path, geneTag string) (Record, error) {
	records, err := ExtractAll(path, geneTag)
	if err != nil {
		return Record{}, err
	}
	return records[len(records)-1], nil
}

// ExtractAll returns every record in the file whose header holds the
// gene tag, in file order.
func ExtractAll(path, geneTag string) ([]Record, error) {
	r, err := recio.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer r.Close()

	records, err := scanRecords(r, geneTag)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// scanRecords accumulates the body lines of each header holding
// geneTag until the next header. Whitespace within lines is dropped.
func scanRecords(r io.Reader, geneTag string) ([]Record, error) {
	var (
		records   []Record
		active    bool
		accession string
		body      strings.Builder
	)

	flush := func() {
		if active {
			records = append(records, newRecord(accession, body.String()))
		}
		body.Reset()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			flush()
			active = strings.Contains(line, geneTag)
			accession = parseAccession(line)
			continue
		}

		if active {
			for _, chunk := range strings.Fields(line) {
				body.WriteString(chunk)
			}
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoMatchingRecord
	}
	return records, nil
}

// parseAccession returns the accession in a header, or "" if there's none.
func parseAccession(header string) string {
	if m := accessionRegex.FindStringSubmatch(header); m != nil {
		return m[1]
	}
	return ""
}
