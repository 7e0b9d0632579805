// Package io opens record files, plain or gzipped, and reads and
// writes FASTA.
package io

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	gzip "github.com/klauspost/pgzip"
)

// Reader reads a record file whether it's gzipped or not. Files
// ending in ".gz" are decompressed as they're read.
type Reader struct {
	*bufio.Reader

	fd     *os.File
	gzipFd *gzip.Reader
}

// Open a record file for reading. The returned error wraps the
// *os.PathError so callers can check for fs.ErrNotExist.
func Open(path string) (*Reader, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r := &Reader{fd: fd}
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		if r.gzipFd, err = gzip.NewReader(fd); err != nil {
			fd.Close()
			return nil, fmt.Errorf("failed to gunzip %s: %w", path, err)
		}
		r.Reader = bufio.NewReader(r.gzipFd)
	} else {
		r.Reader = bufio.NewReader(fd)
	}
	return r, nil
}

// Close the file and, for gzipped files, the decompressor.
func (r *Reader) Close() error {
	if r.gzipFd != nil {
		r.gzipFd.Close()
	}
	return r.fd.Close()
}

// ReadFASTA reads every record in a (multi-)FASTA file.
func ReadFASTA(path string) ([]*linear.Seq, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var seqs []*linear.Seq
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		seqs = append(seqs, sc.Seq().(*linear.Seq))
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("failed to read FASTA %s: %w", path, err)
	}

	return seqs, nil
}

// Header returns a record's full header line, without the leading '>'.
func Header(s *linear.Seq) string {
	if s.Desc == "" {
		return s.ID
	}
	return s.ID + " " + s.Desc
}

// Letters returns the sequence of a record as a string.
func Letters(s *linear.Seq) string {
	return string(alphabet.LettersToBytes(s.Seq))
}
