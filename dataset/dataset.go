// Package dataset provides labeled one- and two-dimensional data containers
// for regression modeling.
//
// A Series is a named float64 vector with integer row labels; a Frame is an
// ordered collection of named columns sharing one set of row labels. Row
// labels are arbitrary integers: they survive filtering, so a frame whose
// rows were previously dropped keeps its original, possibly non-contiguous
// labels. All row selection is by label, never by position.
//
// Missing values are represented as NaN. Container operations never mutate
// their receiver; methods that derive data return new containers and
// accessors return copies.
package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/ogaki-lab/econgo/pkg/errors"
)

// Series is an immutable named vector with integer row labels.
type Series struct {
	name   string
	index  []int
	values []float64
	pos    map[int]int // label -> offset
}

// NewSeries builds a Series from values. A nil index defaults to 0..n-1.
// Labels must be unique and the index must match the value count.
func NewSeries(name string, values []float64, index []int) (*Series, error) {
	if index == nil {
		index = rangeIndex(len(values))
	}
	if len(index) != len(values) {
		return nil, errors.NewDimensionError("dataset.NewSeries", len(values), len(index), 0)
	}
	pos, err := buildPos("dataset.NewSeries", index)
	if err != nil {
		return nil, err
	}
	return &Series{
		name:   name,
		index:  append([]int(nil), index...),
		values: append([]float64(nil), values...),
		pos:    pos,
	}, nil
}

// Name returns the series name.
func (s *Series) Name() string { return s.name }

// Len returns the number of observations, including missing ones.
func (s *Series) Len() int { return len(s.values) }

// Index returns a copy of the row labels.
func (s *Series) Index() []int { return append([]int(nil), s.index...) }

// Values returns a copy of the values in label order.
func (s *Series) Values() []float64 { return append([]float64(nil), s.values...) }

// At returns the value stored under the given row label.
func (s *Series) At(label int) (float64, error) {
	i, ok := s.pos[label]
	if !ok {
		return math.NaN(), errors.NewValueError("Series.At", "unknown row label")
	}
	return s.values[i], nil
}

// DropNA returns a new Series without the rows whose value is missing.
// Labels are preserved; the receiver is untouched.
func (s *Series) DropNA() *Series {
	index := make([]int, 0, len(s.index))
	values := make([]float64, 0, len(s.values))
	for i, v := range s.values {
		if math.IsNaN(v) {
			continue
		}
		index = append(index, s.index[i])
		values = append(values, v)
	}
	return mustSeries(s.name, values, index)
}

// RowsAt returns a new Series restricted to the given labels, in the given
// order. Every label must exist in the series.
func (s *Series) RowsAt(labels []int) (*Series, error) {
	for _, l := range labels {
		if _, ok := s.pos[l]; !ok {
			return nil, errors.NewValueError("Series.RowsAt", "unknown row label")
		}
	}
	return s.rowsAt(labels), nil
}

// rowsAt selects rows by label without validation. Callers guarantee the
// labels exist.
func (s *Series) rowsAt(labels []int) *Series {
	index := make([]int, len(labels))
	values := make([]float64, len(labels))
	for i, l := range labels {
		index[i] = l
		values[i] = s.values[s.pos[l]]
	}
	return mustSeries(s.name, values, index)
}

// Vector returns the values as a new column vector in label order.
// The series must be non-empty; gonum vectors cannot be zero-length.
func (s *Series) Vector() *mat.VecDense {
	return mat.NewVecDense(len(s.values), s.Values())
}

// Frame is an immutable table of named columns sharing integer row labels.
type Frame struct {
	columns []string
	index   []int
	data    [][]float64 // column-major: data[j][i] is row i of column j
	colPos  map[string]int
	pos     map[int]int
}

// NewFrame builds a Frame from column-major data: data[j] holds the values
// of columns[j]. A nil index defaults to 0..n-1. Column names and row labels
// must be unique and all columns must have equal length.
func NewFrame(columns []string, data [][]float64, index []int) (*Frame, error) {
	if len(columns) != len(data) {
		return nil, errors.NewDimensionError("dataset.NewFrame", len(columns), len(data), 1)
	}
	if len(columns) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "dataset.NewFrame: no columns")
	}
	n := len(data[0])
	for _, col := range data {
		if len(col) != n {
			return nil, errors.NewDimensionError("dataset.NewFrame", n, len(col), 0)
		}
	}
	if index == nil {
		index = rangeIndex(n)
	}
	if len(index) != n {
		return nil, errors.NewDimensionError("dataset.NewFrame", n, len(index), 0)
	}
	colPos := make(map[string]int, len(columns))
	for j, name := range columns {
		if _, dup := colPos[name]; dup {
			return nil, errors.NewValueError("dataset.NewFrame", "duplicate column name: "+name)
		}
		colPos[name] = j
	}
	pos, err := buildPos("dataset.NewFrame", index)
	if err != nil {
		return nil, err
	}
	cols := make([][]float64, len(data))
	for j, col := range data {
		cols[j] = append([]float64(nil), col...)
	}
	return &Frame{
		columns: append([]string(nil), columns...),
		index:   append([]int(nil), index...),
		data:    cols,
		colPos:  colPos,
		pos:     pos,
	}, nil
}

// Columns returns a copy of the column names in order.
func (f *Frame) Columns() []string { return append([]string(nil), f.columns...) }

// Index returns a copy of the row labels.
func (f *Frame) Index() []int { return append([]int(nil), f.index...) }

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return len(f.index) }

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.columns) }

// Column returns the named column as a Series sharing the frame's row labels.
func (f *Frame) Column(name string) (*Series, error) {
	j, ok := f.colPos[name]
	if !ok {
		return nil, errors.NewValueError("Frame.Column", "unknown column: "+name)
	}
	return mustSeries(name, append([]float64(nil), f.data[j]...), f.Index()), nil
}

// Select returns a new Frame holding the named columns in the given order.
func (f *Frame) Select(names []string) (*Frame, error) {
	data := make([][]float64, len(names))
	for i, name := range names {
		j, ok := f.colPos[name]
		if !ok {
			return nil, errors.NewValueError("Frame.Select", "unknown column: "+name)
		}
		data[i] = f.data[j]
	}
	return NewFrame(names, data, f.index)
}

// DropNA returns a new Frame without the rows where any column is missing.
// Labels are preserved; the receiver is untouched.
func (f *Frame) DropNA() *Frame {
	keep := make([]int, 0, len(f.index))
	for i := range f.index {
		miss := false
		for _, col := range f.data {
			if math.IsNaN(col[i]) {
				miss = true
				break
			}
		}
		if !miss {
			keep = append(keep, f.index[i])
		}
	}
	return f.rowsAt(keep)
}

// RowsAt returns a new Frame restricted to the given labels, in the given
// order. Every label must exist in the frame.
func (f *Frame) RowsAt(labels []int) (*Frame, error) {
	for _, l := range labels {
		if _, ok := f.pos[l]; !ok {
			return nil, errors.NewValueError("Frame.RowsAt", "unknown row label")
		}
	}
	return f.rowsAt(labels), nil
}

func (f *Frame) rowsAt(labels []int) *Frame {
	data := make([][]float64, len(f.columns))
	for j := range f.columns {
		col := make([]float64, len(labels))
		for i, l := range labels {
			col[i] = f.data[j][f.pos[l]]
		}
		data[j] = col
	}
	out, err := NewFrame(f.Columns(), data, append([]int(nil), labels...))
	if err != nil {
		// Labels were validated by the caller; construction cannot fail.
		panic(err)
	}
	return out
}

// Matrix returns the frame contents as a dense matrix in row-label order,
// one matrix column per frame column. The frame must have at least one
// row; gonum matrices cannot be zero-sized.
func (f *Frame) Matrix() *mat.Dense {
	r, c := f.NumRows(), f.NumCols()
	m := mat.NewDense(r, c, nil)
	for j, col := range f.data {
		for i, v := range col {
			m.Set(i, j, v)
		}
	}
	return m
}

// ColumnMeans returns the per-column mean.
func (f *Frame) ColumnMeans() []float64 {
	out := make([]float64, f.NumCols())
	for j, col := range f.data {
		out[j] = stat.Mean(col, nil)
	}
	return out
}

// ColumnStdDevs returns the per-column sample standard deviation
// (Bessel's correction, divisor n-1).
func (f *Frame) ColumnStdDevs() []float64 {
	out := make([]float64, f.NumCols())
	for j, col := range f.data {
		out[j] = stat.StdDev(col, nil)
	}
	return out
}

// ColumnMins returns the per-column minimum. Returns nil for an empty frame.
func (f *Frame) ColumnMins() []float64 {
	if f.NumRows() == 0 {
		return nil
	}
	out := make([]float64, f.NumCols())
	for j, col := range f.data {
		out[j] = floats.Min(col)
	}
	return out
}

// ColumnMaxs returns the per-column maximum. Returns nil for an empty frame.
func (f *Frame) ColumnMaxs() []float64 {
	if f.NumRows() == 0 {
		return nil
	}
	out := make([]float64, f.NumCols())
	for j, col := range f.data {
		out[j] = floats.Max(col)
	}
	return out
}

func rangeIndex(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func buildPos(op string, index []int) (map[int]int, error) {
	pos := make(map[int]int, len(index))
	for i, l := range index {
		if _, dup := pos[l]; dup {
			return nil, errors.NewValueError(op, "duplicate row label")
		}
		pos[l] = i
	}
	return pos, nil
}

// mustSeries constructs a Series from pre-validated inputs.
func mustSeries(name string, values []float64, index []int) *Series {
	s, err := NewSeries(name, values, index)
	if err != nil {
		panic(err)
	}
	return s
}
