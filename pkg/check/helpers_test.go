package check

import (
	"gonum.org/v1/gonum/mat"

	"github.com/NVIDIA/model-preflight/pkg/transform"
)

// Shared test doubles for models and preprocessing steps.

type namedModel struct {
	features []string
}

func (namedModel) Predict(x mat.Matrix) (mat.Matrix, error) { return x, nil }
func (m namedModel) FeatureNames() []string                 { return m.features }

type countedModel struct {
	n int
}

func (countedModel) Predict(x mat.Matrix) (mat.Matrix, error) { return x, nil }
func (m countedModel) NumFeatures() int                       { return m.n }

type classifierModel struct {
	classes []any
}

func (classifierModel) Predict(x mat.Matrix) (mat.Matrix, error)      { return x, nil }
func (classifierModel) PredictProba(x mat.Matrix) (mat.Matrix, error) { return x, nil }
func (m classifierModel) Classes() []any                              { return m.classes }

type bareModel struct{}

type categoryEncoder struct{}

func (categoryEncoder) Fit(x mat.Matrix) error                     { return nil }
func (categoryEncoder) Transform(x mat.Matrix) (mat.Matrix, error) { return x, nil }
func (categoryEncoder) EncodingFamily() transform.Family {
	return transform.FamilyCategoryEncoder
}

type columnCombiner struct {
	assignments []transform.ColumnAssignment
}

func (columnCombiner) Fit(x mat.Matrix) error                     { return nil }
func (columnCombiner) Transform(x mat.Matrix) (mat.Matrix, error) { return x, nil }
func (c columnCombiner) Assignments() []transform.ColumnAssignment {
	return c.assignments
}

type exoticEncoder struct{}

func (exoticEncoder) Fit(x mat.Matrix) error                     { return nil }
func (exoticEncoder) Transform(x mat.Matrix) (mat.Matrix, error) { return x, nil }

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }
