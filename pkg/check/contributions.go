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
	"gonum.org/v1/gonum/mat"

	"github.com/NVIDIA/model-preflight/pkg/errors"
	"github.com/NVIDIA/model-preflight/pkg/model"
	"github.com/NVIDIA/model-preflight/pkg/tabular"
)

// Contributions checks that a precomputed contributions object has the
// container shape the problem kind requires: a single numeric table or matrix
// for regression, a sequence of per-class tables whose length equals the
// number of classes for classification. Element types inside the containers
// are not inspected here.
func Contributions(kind model.ProblemKind, classes []any, contributions any) error {
	switch kind {
	case model.Regression:
		if isContributionTable(contributions) {
			return nil
		}
		return errors.Newf(errors.ErrCodeTypeShape,
			"contributions type %T is not compatible with a regression model, expected a single table or matrix",
			contributions)

	case model.Classification:
		n, ok := contributionListLen(contributions)
		if !ok {
			return errors.Newf(errors.ErrCodeTypeShape,
				"contributions type %T is not compatible with a classification model, expected a list of per-class tables",
				contributions)
		}
		if n != len(classes) {
			return errors.NewWithContext(errors.ErrCodeLengthMismatch,
				"length of contributions list is not equal to the number of classes in the target",
				map[string]any{
					"contributions": n,
					"classes":       len(classes),
				})
		}
		return nil

	default:
		return errors.Newf(errors.ErrCodeInvalidRequest,
			"unknown problem kind %q", kind)
	}
}

func isContributionTable(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case *tabular.Frame:
		return true
	case mat.Matrix:
		return true
	default:
		return false
	}
}

func contributionListLen(v any) (int, bool) {
	switch c := v.(type) {
	case []*tabular.Frame:
		return len(c), true
	case []mat.Matrix:
		return len(c), true
	case []any:
		return len(c), true
	default:
		return 0, false
	}
}
