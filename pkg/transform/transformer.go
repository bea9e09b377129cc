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

package transform

import (
	"gonum.org/v1/gonum/mat"
)

// Transformer is the interface for data transformation steps.
type Transformer interface {
	// Fit learns parameters necessary for transformation.
	Fit(x mat.Matrix) error

	// Transform transforms data.
	Transform(x mat.Matrix) (mat.Matrix, error)
}

// Remainder is the policy a column-combining transformer applies to columns
// it has no explicit assignment for.
type Remainder string

const (
	// RemainderPassthrough forwards unassigned columns unchanged.
	RemainderPassthrough Remainder = "passthrough"

	// RemainderDrop discards unassigned columns. Dropping columns breaks
	// per-feature attribution downstream, so validation rejects it.
	RemainderDrop Remainder = "drop"
)

// ColumnAssignment binds a transformer (or a Remainder policy standing in for
// one) to a subset of input columns.
type ColumnAssignment struct {
	// Name is the assignment's label within its parent transformer.
	Name string

	// Transformer is the assigned step: a Transformer, or a Remainder policy.
	Transformer any

	// Columns are the input column names the step applies to.
	Columns []string
}

// Drops reports whether the assignment discards its columns instead of
// transforming them.
func (a ColumnAssignment) Drops() bool {
	switch t := a.Transformer.(type) {
	case Remainder:
		return t == RemainderDrop
	case string:
		return t == string(RemainderDrop)
	default:
		return false
	}
}

// ColumnTransformer is a transformer that routes subsets of input columns to
// per-column transformer assignments, the column-combining family.
type ColumnTransformer interface {
	Transformer

	// Assignments returns the fitted per-column transformer assignments,
	// including the remainder policy as a trailing assignment.
	Assignments() []ColumnAssignment
}
