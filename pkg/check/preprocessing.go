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
	"github.com/NVIDIA/model-preflight/pkg/transform"
)

// Preprocessing classifies a preprocessing specification by encoding-library
// family. It reports whether the specification uses a column-combining
// transformer and whether it uses a category encoder; both flags are nil when
// no preprocessing is supplied. Purely informative.
func Preprocessing(spec any) (usesColumnTransformer, usesCategoryEncoder *bool) {
	return transform.Classify(spec)
}

// PreprocessingOptions checks that no column-combining transformer in the
// specification drops its unassigned columns. A dropped column leaves no
// place to attach its per-feature attribution, so the drop remainder policy
// is structurally incompatible with explanation.
func PreprocessingOptions(spec any) error {
	if spec == nil {
		return nil
	}

	for _, step := range transform.Flatten(spec) {
		ct, ok := step.(transform.ColumnTransformer)
		if !ok {
			continue
		}
		for _, a := range ct.Assignments() {
			if a.Drops() {
				return errors.NewWithContext(errors.ErrCodeUnsupportedOption,
					"column transformer remainder 'drop' is not supported",
					map[string]any{
						"assignment": a.Name,
						"columns":    a.Columns,
					})
			}
		}
	}
	return nil
}
