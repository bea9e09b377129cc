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

package preflight

import (
	"github.com/NVIDIA/model-preflight/pkg/check"
	"github.com/NVIDIA/model-preflight/pkg/header"
	"github.com/NVIDIA/model-preflight/pkg/model"
	"github.com/NVIDIA/model-preflight/pkg/tabular"
)

// Gate names in the order the runner evaluates them.
const (
	GateModelRole            = "model-role"
	GateLabelDict            = "label-dict"
	GateMaskParams           = "mask-params"
	GateColumnLabel          = "column-label-consistency"
	GatePredictions          = "predictions"
	GateContributions        = "contributions"
	GatePreprocessingOptions = "preprocessing-options"
	GateFeatureConsistency   = "feature-consistency"
)

// Report is the outcome of a successful preflight run: everything the
// explainer-construction layer needs that validation already had to compute.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// ProblemKind is the detected problem kind.
	ProblemKind model.ProblemKind `json:"problemKind" yaml:"problemKind"`

	// Classes is the ordered class label set, nil for regression.
	Classes []any `json:"classes,omitempty" yaml:"classes,omitempty"`

	// UsesColumnTransformer reports whether the preprocessing uses a
	// column-combining transformer; nil when no preprocessing was supplied.
	UsesColumnTransformer *bool `json:"usesColumnTransformer,omitempty" yaml:"usesColumnTransformer,omitempty"`

	// UsesCategoryEncoder reports whether the preprocessing uses a category
	// encoder; nil when no preprocessing was supplied.
	UsesCategoryEncoder *bool `json:"usesCategoryEncoder,omitempty" yaml:"usesCategoryEncoder,omitempty"`

	// MaskParams is the normalized mask-parameter configuration, nil when
	// none was supplied.
	MaskParams *check.MaskParams `json:"maskParams,omitempty" yaml:"maskParams,omitempty"`

	// Predictions is the normalized prediction table, nil when none was
	// supplied. Not serialized.
	Predictions *tabular.Frame `json:"-" yaml:"-"`

	// Gates lists the gates evaluated, in order.
	Gates []string `json:"gates" yaml:"gates"`

	// DurationMS is the total validation time in milliseconds.
	DurationMS int64 `json:"durationMs" yaml:"durationMs"`
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{
		Gates: make([]string, 0, 8),
	}
}
