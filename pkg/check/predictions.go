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

package check

import (
	"github.com/NVIDIA/model-preflight/pkg/errors"
	"github.com/NVIDIA/model-preflight/pkg/tabular"
)

// Predictions checks that a user-supplied prediction object has the right
// shape and normalizes it. A nil ypred passes through unchanged. Otherwise
// ypred must be a single-column integer or floating-point Frame, or a Series
// of such a type, whose row index is identical to x's; a valid Series is
// promoted to its single-column Frame form. The input is never mutated.
func Predictions(x *tabular.Frame, ypred any) (*tabular.Frame, error) {
	if ypred == nil {
		return nil, nil
	}
	if x == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			"x must be provided to validate y_pred against")
	}

	switch p := ypred.(type) {
	case *tabular.Frame:
		if !p.Index().Equal(x.Index()) {
			return nil, indexMismatch()
		}
		if p.NumCols() != 1 {
			return nil, errors.Newf(errors.ErrCodeTypeShape,
				"y_pred must be a one column frame or series, got %d columns", p.NumCols())
		}
		if dt := p.ColumnTypeAt(0); !dt.IsNumeric() {
			return nil, errors.Newf(errors.ErrCodeTypeShape,
				"y_pred must contain int or float only, got %s", dt)
		}
		return p, nil

	case *tabular.Series:
		if !p.Index().Equal(x.Index()) {
			return nil, indexMismatch()
		}
		if dt := p.DType(); !dt.IsNumeric() {
			return nil, errors.Newf(errors.ErrCodeTypeShape,
				"y_pred must contain int or float only, got %s", dt)
		}
		return p.ToFrame(), nil

	default:
		return nil, errors.Newf(errors.ErrCodeInvalidRequest,
			"y_pred must be a one column frame or series, got %T", ypred)
	}
}

func indexMismatch() error {
	return errors.New(errors.ErrCodeIndexMismatch,
		"x and y_pred should have the same index")
}
