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

// DType represents the declared element type of a column.
type DType string

const (
	DTypeInt      DType = "int"
	DTypeFloat    DType = "float"
	DTypeBool     DType = "bool"
	DTypeString   DType = "string"
	DTypeCategory DType = "category"
)

// DTypes is the list of all supported column types.
var DTypes = []DType{
	DTypeInt,
	DTypeFloat,
	DTypeBool,
	DTypeString,
	DTypeCategory,
}

// String returns the string representation of the DType.
func (d DType) String() string {
	return string(d)
}

// IsNumeric reports whether the DType is an integer or floating-point type.
func (d DType) IsNumeric() bool {
	return d == DTypeInt || d == DTypeFloat
}

// ParseDType parses a string into a DType.
// Returns the DType and true if parsing succeeds, or empty DType and false if
// the string is invalid.
func ParseDType(s string) (DType, bool) {
	for _, d := range DTypes {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// Index is an ordered sequence of row labels. Two indexes are equal only when
// they hold the same labels in the same order.
type Index struct {
	labels []int64
}

// NewIndex creates an Index from the given labels. The slice is copied.
func NewIndex(labels []int64) Index {
	out := make([]int64, len(labels))
	copy(out, labels)
	return Index{labels: out}
}

// NewRangeIndex creates an Index labeled 0..n-1.
func NewRangeIndex(n int) Index {
	labels := make([]int64, n)
	for i := range labels {
		labels[i] = int64(i)
	}
	return Index{labels: labels}
}

// Len returns the number of rows the Index covers.
func (ix Index) Len() int {
	return len(ix.labels)
}

// Label returns the label at position i.
func (ix Index) Label(i int) int64 {
	return ix.labels[i]
}

// Labels returns a copy of the ordered labels.
func (ix Index) Labels() []int64 {
	out := make([]int64, len(ix.labels))
	copy(out, ix.labels)
	return out
}

// Equal reports whether two indexes hold identical labels in identical order.
func (ix Index) Equal(other Index) bool {
	if len(ix.labels) != len(other.labels) {
		return false
	}
	for i, l := range ix.labels {
		if other.labels[i] != l {
			return false
		}
	}
	return true
}
