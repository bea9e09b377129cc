package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/model-preflight/pkg/errors"
	"github.com/NVIDIA/model-preflight/pkg/model"
	"github.com/NVIDIA/model-preflight/pkg/tabular"
)

func TestModelFeaturesConsistent(t *testing.T) {
	columns := map[int]string{0: "age", 1: "income"}
	types := map[string]tabular.DType{"age": tabular.DTypeInt, "income": tabular.DTypeFloat}
	m := namedModel{features: []string{"age", "income"}}

	err := ModelFeatures(nil, m, columns, types, nil, nil)
	assert.NoError(t, err)
}

func TestModelFeaturesTypesColumnsMismatch(t *testing.T) {
	columns := map[int]string{0: "age", 1: "income"}
	types := map[string]tabular.DType{"age": tabular.DTypeInt}
	m := namedModel{features: []string{"age", "income"}}

	err := ModelFeatures(nil, m, columns, types, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInconsistentDictionary))
}

func TestModelFeaturesFeaturesDictSubset(t *testing.T) {
	columns := map[int]string{0: "age", 1: "income"}
	types := map[string]tabular.DType{"age": tabular.DTypeInt, "income": tabular.DTypeFloat}
	m := namedModel{features: []string{"age", "income"}}

	err := ModelFeatures(map[string]string{"age": "Age"}, m, columns, types, nil, nil)
	assert.NoError(t, err)

	err = ModelFeatures(map[string]string{"job": "Job"}, m, columns, types, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInconsistentDictionary))
}

func TestModelFeaturesMaskedFeatureUnknown(t *testing.T) {
	columns := map[int]string{0: "age", 1: "income"}
	types := map[string]tabular.DType{"age": tabular.DTypeInt, "income": tabular.DTypeFloat}
	m := namedModel{features: []string{"age", "income"}}
	mask := &MaskParams{
		FeaturesToHide: []string{"job"},
		Positive:       boolPtr(true),
		MaxContrib:     intPtr(5),
	}

	err := ModelFeatures(nil, m, columns, types, mask, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInconsistentDictionary))

	mask.FeaturesToHide = []string{"income"}
	assert.NoError(t, ModelFeatures(nil, m, columns, types, mask, nil))
}

func TestModelFeaturesCategoryEncoderExactNames(t *testing.T) {
	columns := map[int]string{0: "age", 1: "job"}
	types := map[string]tabular.DType{"age": tabular.DTypeInt, "job": tabular.DTypeCategory}

	match := namedModel{features: []string{"job", "age"}}
	assert.NoError(t, ModelFeatures(nil, match, columns, types, nil, categoryEncoder{}))

	renamed := namedModel{features: []string{"age", "job_1"}}
	err := ModelFeatures(nil, renamed, columns, types, nil, categoryEncoder{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInconsistentDictionary))
}

func TestModelFeaturesColumnTransformerSizeOnly(t *testing.T) {
	columns := map[int]string{0: "age", 1: "job"}
	types := map[string]tabular.DType{"age": tabular.DTypeInt, "job": tabular.DTypeCategory}

	// One-hot-style renaming is fine as long as the count agrees.
	renamed := namedModel{features: []string{"age", "job_1"}}
	assert.NoError(t, ModelFeatures(nil, renamed, columns, types, nil, columnCombiner{}))

	expanded := namedModel{features: []string{"age", "job_1", "job_2"}}
	err := ModelFeatures(nil, expanded, columns, types, nil, columnCombiner{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLengthMismatch))
}

func TestModelFeaturesUnrecognizedEncoder(t *testing.T) {
	columns := map[int]string{0: "age"}
	types := map[string]tabular.DType{"age": tabular.DTypeInt}
	m := namedModel{features: []string{"age"}}

	err := ModelFeatures(nil, m, columns, types, nil, exoticEncoder{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnsupportedEncoder))
}

func TestModelFeaturesNoPreprocessingSkipsNameComparison(t *testing.T) {
	columns := map[int]string{0: "age", 1: "job"}
	types := map[string]tabular.DType{"age": tabular.DTypeInt, "job": tabular.DTypeCategory}

	// Without preprocessing the name-based comparison does not apply, even
	// when the model reports differently named features.
	renamed := namedModel{features: []string{"age", "job_encoded"}}
	assert.NoError(t, ModelFeatures(nil, renamed, columns, types, nil, nil))
}

func TestModelFeaturesCountedModel(t *testing.T) {
	columns := map[int]string{0: "age", 1: "income"}
	types := map[string]tabular.DType{"age": tabular.DTypeInt, "income": tabular.DTypeFloat}

	assert.NoError(t, ModelFeatures(nil, countedModel{n: 2}, columns, types, nil, nil))

	err := ModelFeatures(nil, countedModel{n: 3}, columns, types, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLengthMismatch))
}

func TestModelFeaturesUnsupportedModel(t *testing.T) {
	columns := map[int]string{0: "age"}
	types := map[string]tabular.DType{"age": tabular.DTypeInt}

	err := ModelFeatures(nil, bareModel{}, columns, types, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnsupportedModel))
}

func TestModelFeaturesWithRegistry(t *testing.T) {
	columns := map[int]string{0: "age", 1: "income"}
	types := map[string]tabular.DType{"age": tabular.DTypeInt, "income": tabular.DTypeFloat}

	reg := model.NewFeatureRegistry()
	reg.Register(model.FamilyOf(bareModel{}), func(any) (model.FeatureSpec, error) {
		return model.CountedFeatures(2), nil
	})

	err := ModelFeaturesWithRegistry(nil, bareModel{}, columns, types, nil, nil, reg)
	assert.NoError(t, err)
}

func TestModelFeaturesDuplicateColumnValues(t *testing.T) {
	// Distinct values are what counts: two positions sharing a name collapse.
	columns := map[int]string{0: "age", 1: "age"}
	types := map[string]tabular.DType{"age": tabular.DTypeInt}

	assert.NoError(t, ModelFeatures(nil, countedModel{n: 1}, columns, types, nil, nil))
}
