package csvio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ecolysis/population"
)

// WriteSeries writes one line per step of s, stage values in their original
// order joined by the delimiter. An empty series writes only the header,
// if one was requested.
func WriteSeries(w io.Writer, s population.Series, opts ...Option) error {
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)

	if len(o.header) > 0 {
		if _, err := bw.WriteString(strings.Join(o.header, o.delimiter) + "\n"); err != nil {
			return err
		}
	}
	for k := 0; k < s.Len(); k++ {
		v, _ := s.Step(k)
		if _, err := bw.WriteString(formatValues(v.Values(), o) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// FormatVector renders v as a single delimited line without a newline.
func FormatVector(v population.StageVector, opts ...Option) string {
	return formatValues(v.Values(), gatherOptions(opts...))
}

// WriteMatrix writes m one row per line, for round-tripping through ReadMatrix.
func WriteMatrix(w io.Writer, m *population.ProjectionMatrix, opts ...Option) error {
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	for _, row := range m.Rows() {
		if _, err := bw.WriteString(formatValues(row, o) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func formatValues(xs []float64, o Options) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'f', o.precision, 64)
	}

	return strings.Join(parts, o.delimiter)
}
