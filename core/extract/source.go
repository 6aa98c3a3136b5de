package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"catalog-ingest/core/catalog"
)

// Source produces decoded rows one at a time. Next returns io.EOF once the
// input is exhausted; any other error is a decode failure.
type Source interface {
	Next() (catalog.Row, error)
}

// CSVSource decodes a delimited extract whose first record is the header.
type CSVSource struct {
	reader *csv.Reader
	header []string
	done   bool
}

// NewCSVSource creates a comma separated source reading from r.
func NewCSVSource(r io.Reader) *CSVSource {
	return NewDelimitedSource(r, ',')
}

// NewDelimitedSource creates a source with a custom field delimiter.
func NewDelimitedSource(r io.Reader, comma rune) *CSVSource {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = false
	return &CSVSource{reader: reader}
}

// Next returns the next row. Empty cells are omitted from the row so that
// they read as absent.
func (s *CSVSource) Next() (catalog.Row, error) {
	if s.done {
		return nil, io.EOF
	}

	if s.header == nil {
		header, err := s.reader.Read()
		if errors.Is(err, io.EOF) {
			s.done = true
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		if len(header) > 0 {
			header[0] = strings.TrimPrefix(header[0], "\uFEFF")
		}
		for i := range header {
			header[i] = strings.TrimSpace(header[i])
		}
		s.header = header
	}

	record, err := s.reader.Read()
	if errors.Is(err, io.EOF) {
		s.done = true
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode row: %w", err)
	}

	row := make(catalog.Row, len(s.header))
	for i, value := range record {
		if i >= len(s.header) || value == "" {
			continue
		}
		row[s.header[i]] = value
	}
	return row, nil
}

// SliceSource serves rows from memory.
type SliceSource struct {
	rows []catalog.Row
	pos  int
	err  error
}

// NewSliceSource creates a source over rows. A non-nil err is returned after
// the last row in place of io.EOF.
func NewSliceSource(rows []catalog.Row, err error) *SliceSource {
	return &SliceSource{rows: rows, err: err}
}

// Next returns the next row.
func (s *SliceSource) Next() (catalog.Row, error) {
	if s.pos >= len(s.rows) {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}
