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

// Package check implements the pre-flight validators that run before an
// explainer is constructed: a flat set of independent, side-effect-free
// functions that verify a model, its preprocessing, and the user-supplied
// auxiliary structures (label dictionaries, feature dictionaries, mask
// parameters, precomputed contributions) are mutually consistent.
//
// Every validator fails fast on the first violation, raising a structured
// error from pkg/errors that names the offending values; none of them mutate
// their inputs or accumulate results. The one normalizing validator,
// Predictions, returns a new object rather than modifying the one it was
// given.
//
// # Validators
//
//   - Preprocessing: classify a preprocessing spec by encoder family
//   - ModelRole: classification vs. regression, plus the class label set
//   - LabelDict: label dictionary keys equal the model's class set
//   - MaskParameters: mask configuration carries only recognized keys
//   - Predictions: prediction vector shape, dtype, and index alignment
//   - Contributions: contributions container shape per problem kind
//   - ModelFeatures: feature dictionaries vs. model's expected inputs
//   - PreprocessingOptions: no drop remainder policy in column transformers
//   - ModelLabel: label dictionary keys are known column positions
//
// All validators are safe for concurrent use; they hold no state beyond the
// package-level extractor and family registries, which are themselves
// thread-safe.
package check
