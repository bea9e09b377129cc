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

package model

import (
	"github.com/NVIDIA/model-preflight/pkg/errors"
)

// ProblemKind represents what kind of target a model estimates.
type ProblemKind string

const (
	// Classification indicates a discrete label set target.
	Classification ProblemKind = "classification"

	// Regression indicates a continuous target.
	Regression ProblemKind = "regression"
)

// String returns the string representation of the ProblemKind.
func (k ProblemKind) String() string {
	return string(k)
}

// DetectRole inspects a model's capabilities and decides whether it solves a
// classification or regression problem. For classification it also resolves
// the ordered class label set.
//
// The rules, in order:
//   - A model without the Predictor capability is unsupported.
//   - A ProbabilityPredictor, or any class-label source, marks the
//     classification path. Labels from ClassProvider take precedence over
//     LegacyClassLister.
//   - A probability-capable model reporting an empty (non-nil) label set is
//     coerced to the binary default [0, 1]. The coercion stays this narrow on
//     purpose: without the probability capability an empty label set means
//     the model is not a classifier at all.
//   - A probability-capable model with no resolvable label set is unsupported.
//
// The returned label slice is a copy; callers may retain it.
func DetectRole(m any) (ProblemKind, []any, error) {
	if _, ok := m.(Predictor); !ok {
		return "", nil, errors.New(errors.ErrCodeUnsupportedModel,
			"no predict capability in the specified model, check the model parameter")
	}

	_, hasProba := m.(ProbabilityPredictor)

	var classes []any
	if lister, ok := m.(LegacyClassLister); ok {
		classes = lister.LegacyClasses()
	}
	if provider, ok := m.(ClassProvider); ok {
		if c := provider.Classes(); c != nil || classes == nil {
			classes = c
		}
	}

	if hasProba {
		if classes != nil && len(classes) == 0 {
			// Binary default for model families that expose probabilities
			// without recording their labels.
			classes = []any{0, 1}
		}
		if classes == nil {
			return "", nil, errors.New(errors.ErrCodeUnsupportedModel,
				"no class labels resolvable, classification model not supported")
		}
	}

	if len(classes) > 0 {
		out := make([]any, len(classes))
		copy(out, classes)
		return Classification, out, nil
	}
	return Regression, nil, nil
}
