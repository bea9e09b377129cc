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
	"github.com/NVIDIA/model-preflight/pkg/model"
)

// ModelRole decides whether a model solves a classification or regression
// problem and, for classification, returns its ordered class label set.
// Models without a point-prediction capability, and probability-capable
// models without a resolvable label set, are rejected.
func ModelRole(m any) (model.ProblemKind, []any, error) {
	return model.DetectRole(m)
}
