package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/NVIDIA/model-preflight/pkg/errors"
	"github.com/NVIDIA/model-preflight/pkg/model"
	"github.com/NVIDIA/model-preflight/pkg/tabular"
)

func contributionFrame(t *testing.T, rows int) *tabular.Frame {
	t.Helper()
	data := mat.NewDense(rows, 2, make([]float64, rows*2))
	f, err := tabular.NewFrame(tabular.NewRangeIndex(rows), []string{"age", "income"},
		[]tabular.DType{tabular.DTypeFloat, tabular.DTypeFloat}, data)
	require.NoError(t, err)
	return f
}

func TestContributionsRegression(t *testing.T) {
	frame := contributionFrame(t, 3)

	assert.NoError(t, Contributions(model.Regression, nil, frame))
	assert.NoError(t, Contributions(model.Regression, nil, mat.NewDense(3, 2, make([]float64, 6))))

	err := Contributions(model.Regression, nil, []any{frame, frame})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTypeShape))

	err = Contributions(model.Regression, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTypeShape))
}

func TestContributionsClassification(t *testing.T) {
	classes := []any{"a", "b", "c"}
	frame := contributionFrame(t, 3)

	assert.NoError(t, Contributions(model.Classification, classes,
		[]*tabular.Frame{frame, frame, frame}))
	assert.NoError(t, Contributions(model.Classification, classes,
		[]any{frame, frame, frame}))

	err := Contributions(model.Classification, classes, []*tabular.Frame{frame, frame})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLengthMismatch))

	err = Contributions(model.Classification, classes, frame)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTypeShape))
}

func TestContributionsMatrixList(t *testing.T) {
	m := mat.NewDense(2, 2, make([]float64, 4))
	assert.NoError(t, Contributions(model.Classification, []any{0, 1},
		[]mat.Matrix{m, m}))
}

func TestContributionsUnknownKind(t *testing.T) {
	err := Contributions("clustering", nil, contributionFrame(t, 1))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
}
