// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tabular

import (
	"gonum.org/v1/gonum/mat"

	"github.com/NVIDIA/model-preflight/pkg/errors"
)

// Frame is a two-dimensional table of numeric values with named, typed
// columns and an ordered row index. Values are stored in a gonum dense
// matrix; integer and boolean columns are stored as their float64 encoding
// while keeping their declared DType.
type Frame struct {
	index  Index
	cols   []string
	dtypes []DType
	data   *mat.Dense
}

// NewFrame creates a Frame over the given dense matrix. The matrix dimensions
// must agree with the index length and column count. A nil matrix is allowed
// only for an empty index.
func NewFrame(index Index, cols []string, dtypes []DType, data *mat.Dense) (*Frame, error) {
	if len(cols) != len(dtypes) {
		return nil, errors.Newf(errors.ErrCodeInvalidRequest,
			"frame has %d column names but %d column types", len(cols), len(dtypes))
	}
	if data == nil {
		if index.Len() != 0 {
			return nil, errors.New(errors.ErrCodeInvalidRequest,
				"frame data cannot be nil for a non-empty index")
		}
	} else {
		r, c := data.Dims()
		if r != index.Len() {
			return nil, errors.Newf(errors.ErrCodeInvalidRequest,
				"frame data has %d rows but index has %d labels", r, index.Len())
		}
		if c != len(cols) {
			return nil, errors.Newf(errors.ErrCodeInvalidRequest,
				"frame data has %d columns but %d column names", c, len(cols))
		}
	}

	f := &Frame{
		index:  index,
		cols:   make([]string, len(cols)),
		dtypes: make([]DType, len(dtypes)),
		data:   data,
	}
	copy(f.cols, cols)
	copy(f.dtypes, dtypes)
	return f, nil
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	return f.index.Len()
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.cols)
}

// Columns returns a copy of the ordered column names.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.cols))
	copy(out, f.cols)
	return out
}

// ColumnTypeAt returns the declared DType of the column at position j.
func (f *Frame) ColumnTypeAt(j int) DType {
	return f.dtypes[j]
}

// ColumnType returns the declared DType of the named column.
func (f *Frame) ColumnType(name string) (DType, bool) {
	for j, c := range f.cols {
		if c == name {
			return f.dtypes[j], true
		}
	}
	return "", false
}

// Index returns the row index.
func (f *Frame) Index() Index {
	return f.index
}

// Data returns the backing matrix, or nil for an empty frame.
func (f *Frame) Data() mat.Matrix {
	if f.data == nil {
		return nil
	}
	return f.data
}

// At returns the value at row i, column j.
func (f *Frame) At(i, j int) float64 {
	return f.data.At(i, j)
}

// Column extracts the named column as a Series. The values are copied.
func (f *Frame) Column(name string) (*Series, bool) {
	for j, c := range f.cols {
		if c != name {
			continue
		}
		values := make([]float64, f.NumRows())
		for i := range values {
			values[i] = f.data.At(i, j)
		}
		s, err := NewSeries(name, f.dtypes[j], f.index, values)
		if err != nil {
			return nil, false
		}
		return s, true
	}
	return nil, false
}

// Series is a one-dimensional named, typed vector of numeric values with an
// ordered row index.
type Series struct {
	name   string
	dtype  DType
	index  Index
	values *mat.VecDense
}

// NewSeries creates a Series from the given values. The slice is copied and
// its length must match the index length.
func NewSeries(name string, dtype DType, index Index, values []float64) (*Series, error) {
	if len(values) != index.Len() {
		return nil, errors.Newf(errors.ErrCodeInvalidRequest,
			"series has %d values but index has %d labels", len(values), index.Len())
	}
	s := &Series{
		name:  name,
		dtype: dtype,
		index: index,
	}
	if len(values) > 0 {
		out := make([]float64, len(values))
		copy(out, values)
		s.values = mat.NewVecDense(len(out), out)
	}
	return s, nil
}

// Name returns the series name.
func (s *Series) Name() string {
	return s.name
}

// DType returns the declared element type.
func (s *Series) DType() DType {
	return s.dtype
}

// Index returns the row index.
func (s *Series) Index() Index {
	return s.index
}

// Len returns the number of values.
func (s *Series) Len() int {
	return s.index.Len()
}

// At returns the value at position i.
func (s *Series) At(i int) float64 {
	return s.values.AtVec(i)
}

// Values returns a copy of the values.
func (s *Series) Values() []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = s.values.AtVec(i)
	}
	return out
}

// ToFrame promotes the series to a single-column Frame sharing the same
// index, name, and declared type. The values are copied; the receiver is
// never mutated.
func (s *Series) ToFrame() *Frame {
	var data *mat.Dense
	if s.Len() > 0 {
		values := s.Values()
		data = mat.NewDense(s.Len(), 1, values)
	}
	return &Frame{
		index:  s.index,
		cols:   []string{s.name},
		dtypes: []DType{s.dtype},
		data:   data,
	}
}
