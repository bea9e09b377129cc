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
	"fmt"
	"sort"

	"github.com/NVIDIA/model-preflight/pkg/errors"
	"github.com/NVIDIA/model-preflight/pkg/model"
	"github.com/NVIDIA/model-preflight/pkg/tabular"
	"github.com/NVIDIA/model-preflight/pkg/transform"
)

// ModelFeatures cross-checks that the feature dictionaries, the columns
// dictionary, the model's expected input features, and the preprocessing type
// are mutually consistent. Checks run in sequence and fail fast:
//
//  1. Every features_dict key must be a features_types key.
//  2. The features_types key set must equal the columns_dict value set.
//  3. Every masked feature must be a features_types key.
//  4. The model's expected features are resolved through the extractor
//     registry (or the model's own capabilities).
//  5. When names are known, the comparison mode depends on the preprocessing
//     family: exact name-set equality for category encoders, size-only
//     equality for column-combining or direct encoders (expansion may rename
//     features), rejection for any other non-nil preprocessing.
//  6. When only a count is known, the distinct columns_dict values must match
//     it.
//
// It uses the package-default extractor registry; ModelFeaturesWithRegistry
// accepts an explicit one.
func ModelFeatures(featuresDict map[string]string, m any, columnsDict map[int]string,
	featuresTypes map[string]tabular.DType, maskParams *MaskParams, preprocessing any) error {
	return ModelFeaturesWithRegistry(featuresDict, m, columnsDict, featuresTypes,
		maskParams, preprocessing, nil)
}

// ModelFeaturesWithRegistry is ModelFeatures with an explicit feature
// extractor registry; a nil registry falls back to the package default.
func ModelFeaturesWithRegistry(featuresDict map[string]string, m any, columnsDict map[int]string,
	featuresTypes map[string]tabular.DType, maskParams *MaskParams, preprocessing any,
	reg *model.FeatureRegistry) error {

	known := make([]string, 0, len(featuresTypes))
	for f := range featuresTypes {
		known = append(known, f)
	}
	sort.Strings(known)

	if featuresDict != nil {
		for f := range featuresDict {
			if _, ok := featuresTypes[f]; !ok {
				return errors.NewWithContext(errors.ErrCodeInconsistentDictionary,
					fmt.Sprintf("features_dict key %q must be in features_types%s",
						f, suggestKey(f, known)),
					map[string]any{"feature": f})
			}
		}
	}

	columnValues := distinctValues(columnsDict)
	if !sameStringSet(known, columnValues) {
		return errors.NewWithContext(errors.ErrCodeInconsistentDictionary,
			fmt.Sprintf("features of features_types and columns_dict must be the same: features_types keys %v, columns_dict values %v",
				known, columnValues),
			map[string]any{
				"features_types_keys": known,
				"columns_dict_values": columnValues,
			})
	}

	if maskParams != nil && maskParams.FeaturesToHide != nil {
		for _, f := range maskParams.FeaturesToHide {
			if _, ok := featuresTypes[f]; !ok {
				return errors.NewWithContext(errors.ErrCodeInconsistentDictionary,
					fmt.Sprintf("masked feature %q must be a model feature%s",
						f, suggestKey(f, known)),
					map[string]any{"feature": f})
			}
		}
	}

	spec, err := model.ExtractFeatures(m, reg)
	if err != nil {
		return err
	}

	names, named := spec.Names()
	if !named {
		if len(columnValues) != spec.Count() {
			return errors.NewWithContext(errors.ErrCodeLengthMismatch,
				"features of columns_dict and model must have the same length",
				map[string]any{
					"columns_dict_features": len(columnValues),
					"model_features":        spec.Count(),
				})
		}
		return nil
	}

	modelNames := distinctStrings(names)
	switch transform.FamilyOf(preprocessing) {
	case transform.FamilyCategoryEncoder:
		if !sameStringSet(columnValues, modelNames) {
			return errors.NewWithContext(errors.ErrCodeInconsistentDictionary,
				fmt.Sprintf("features of columns_dict and model must be the same: columns_dict values %v, model features %v",
					columnValues, modelNames),
				map[string]any{
					"columns_dict_values": columnValues,
					"model_features":      modelNames,
				})
		}
	case transform.FamilyColumnTransformer, transform.FamilyDirectEncoder:
		if len(columnValues) != len(modelNames) {
			return errors.NewWithContext(errors.ErrCodeLengthMismatch,
				"length of features of columns_dict and model must be the same",
				map[string]any{
					"columns_dict_features": len(columnValues),
					"model_features":        len(modelNames),
				})
		}
	default:
		if preprocessing != nil {
			return errors.Newf(errors.ErrCodeUnsupportedEncoder,
				"preprocessing type %T is not supported", preprocessing)
		}
	}

	return nil
}

// distinctValues returns the sorted distinct values of a columns dictionary.
func distinctValues(columnsDict map[int]string) []string {
	seen := make(map[string]struct{}, len(columnsDict))
	for _, v := range columnsDict {
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func distinctStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func sameStringSet(a, b []string) bool {
	as := make(map[string]struct{}, len(a))
	for _, v := range a {
		as[v] = struct{}{}
	}
	bs := make(map[string]struct{}, len(b))
	for _, v := range b {
		bs[v] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for k := range as {
		if _, ok := bs[k]; !ok {
			return false
		}
	}
	return true
}
