package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrParse wraps any field that is not a valid float64, or malformed CSV.
	ErrParse = errors.New("csvio: cannot parse input")

	// ErrEmptyInput is returned when the input holds no values at all.
	ErrEmptyInput = errors.New("csvio: input is empty")
)

// ReadMatrix parses r into rows, one per CSV record. Records may differ in
// length; population.Build reports ragged or non-square input.
// Blank lines and lines starting with '#' are ignored.
func ReadMatrix(r io.Reader, opts ...Option) ([][]float64, error) {
	o := gatherOptions(opts...)
	records, err := readRecords(r, o)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, 0, len(records))
	for _, rec := range records {
		row, err := parseRecord(rec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ReadVector parses every field of every record of r, in order, into a
// single vector. Both "40, 20, 100" and one value per line are accepted.
func ReadVector(r io.Reader, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	records, err := readRecords(r, o)
	if err != nil {
		return nil, err
	}

	var out []float64
	for _, rec := range records {
		row, err := parseRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, row...)
	}

	return out, nil
}

// record is one CSV line with its 1-based line number.
type record struct {
	line   int
	fields []string
}

func readRecords(r io.Reader, o Options) ([]record, error) {
	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.Comment = '#'
	cr.FieldsPerRecord = -1 // shape is validated downstream
	cr.TrimLeadingSpace = true

	var out []record
	first := true
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if first && o.skipHeader {
			first = false
			continue
		}
		first = false
		line, _ := cr.FieldPos(0)
		out = append(out, record{line: line, fields: fields})
	}
	if len(out) == 0 {
		return nil, ErrEmptyInput
	}

	return out, nil
}

func parseRecord(rec record) ([]float64, error) {
	row := make([]float64, 0, len(rec.fields))
	for i, f := range rec.fields {
		f = strings.TrimSpace(f)
		if f == "" && len(rec.fields) > 1 && i == len(rec.fields)-1 {
			continue // tolerate a trailing delimiter
		}
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d field %d %q", ErrParse, rec.line, i+1, f)
		}
		row = append(row, x)
	}

	return row, nil
}
