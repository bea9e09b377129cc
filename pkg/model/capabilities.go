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
	"gonum.org/v1/gonum/mat"
)

// Predictor is the capability of producing point predictions. Every model
// handed to the preflight validators must implement it.
type Predictor interface {
	// Predict performs predictions on input data.
	Predict(x mat.Matrix) (mat.Matrix, error)
}

// ProbabilityPredictor is the capability of producing per-class probability
// distributions. Its presence marks a model as a classifier.
type ProbabilityPredictor interface {
	// PredictProba returns probability estimates for each class.
	PredictProba(x mat.Matrix) (mat.Matrix, error)
}

// ClassProvider exposes the class labels seen during fitting. It is the
// preferred source of a classifier's label set.
type ClassProvider interface {
	// Classes returns the ordered class labels, nil when unknown.
	Classes() []any
}

// LegacyClassLister is a secondary label source for model families that
// report their classes under an alternate attribute. When a model implements
// both, ClassProvider wins.
type LegacyClassLister interface {
	// LegacyClasses returns the ordered class labels, nil when unknown.
	LegacyClasses() []any
}

// FeatureProvider exposes the names of the input features the model was
// trained on.
type FeatureProvider interface {
	// FeatureNames returns the ordered expected input feature names.
	FeatureNames() []string
}

// FeatureCounter exposes only the number of input features the model was
// trained on, for families that do not retain feature names.
type FeatureCounter interface {
	// NumFeatures returns the expected input feature count.
	NumFeatures() int
}

// FamilyTagged lets a model declare its family explicitly instead of being
// keyed by its runtime type name.
type FamilyTagged interface {
	// ModelFamily returns the family tag used for registry dispatch.
	ModelFamily() Family
}
