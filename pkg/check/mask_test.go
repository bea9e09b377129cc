package check

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/model-preflight/pkg/errors"
)

func TestMaskParameters(t *testing.T) {
	tests := []struct {
		name     string
		params   any
		wantCode errors.ErrorCode
	}{
		{
			name:   "empty mapping passes",
			params: map[string]any{},
		},
		{
			name: "all recognized keys pass",
			params: map[string]any{
				"features_to_hide": []string{"job"},
				"threshold":        nil,
				"positive":         true,
				"max_contrib":      5,
			},
		},
		{
			name:   "typed params pass",
			params: MaskParams{MaxContrib: intPtr(3)},
		},
		{
			name:   "typed pointer passes",
			params: &MaskParams{},
		},
		{
			name:     "unknown key rejected",
			params:   map[string]any{"features_to_hide": nil, "top_k": 5},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "non-mapping rejected",
			params:   []string{"threshold"},
			wantCode: errors.ErrCodeInvalidRequest,
		},
		{
			name:     "nil rejected",
			params:   nil,
			wantCode: errors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MaskParameters(tt.params)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.wantCode),
				"expected %s, got %s", tt.wantCode, errors.CodeOf(err))
		})
	}
}

func TestMaskParametersSuggestsClosestKey(t *testing.T) {
	err := MaskParameters(map[string]any{"thresold": 0.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "threshold"?`)
}

func TestMaskParamsFromMap(t *testing.T) {
	mp, err := MaskParamsFromMap(map[string]any{
		"features_to_hide": []any{"job", "age"},
		"threshold":        0.1,
		"positive":         true,
		"max_contrib":      5,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"job", "age"}, mp.FeaturesToHide)
	require.NotNil(t, mp.Threshold)
	assert.Equal(t, 0.1, *mp.Threshold)
	require.NotNil(t, mp.Positive)
	assert.True(t, *mp.Positive)
	require.NotNil(t, mp.MaxContrib)
	assert.Equal(t, 5, *mp.MaxContrib)
}

func TestMaskParamsFromMapPartial(t *testing.T) {
	mp, err := MaskParamsFromMap(map[string]any{"threshold": 2})
	require.NoError(t, err)
	require.NotNil(t, mp.Threshold)
	assert.Equal(t, 2.0, *mp.Threshold)
	assert.Nil(t, mp.FeaturesToHide)
	assert.Nil(t, mp.Positive)
	assert.Nil(t, mp.MaxContrib)
}

func TestMaskParamsFromMapBadValues(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
	}{
		{"features not a list", map[string]any{"features_to_hide": "job"}},
		{"features with non-string", map[string]any{"features_to_hide": []any{1}}},
		{"threshold not numeric", map[string]any{"threshold": "high"}},
		{"positive not bool", map[string]any{"positive": "yes"}},
		{"max_contrib fractional", map[string]any{"max_contrib": 2.5}},
		{"max_contrib not numeric", map[string]any{"max_contrib": "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MaskParamsFromMap(tt.in)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidConfig))
		})
	}
}

func TestMaskParamsFromMapNil(t *testing.T) {
	_, err := MaskParamsFromMap(nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
}

func TestLoadMaskParams(t *testing.T) {
	doc := strings.TrimSpace(`
features_to_hide:
  - job
  - marital
threshold: 0.25
positive: false
max_contrib: 10
`)

	mp, err := LoadMaskParams([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"job", "marital"}, mp.FeaturesToHide)
	assert.Equal(t, 0.25, *mp.Threshold)
	assert.False(t, *mp.Positive)
	assert.Equal(t, 10, *mp.MaxContrib)
}

func TestLoadMaskParamsUnknownKey(t *testing.T) {
	_, err := LoadMaskParams([]byte("top_k: 5\n"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidConfig))
}

func TestLoadMaskParamsEmptyDocument(t *testing.T) {
	mp, err := LoadMaskParams(nil)
	require.NoError(t, err)
	assert.Equal(t, &MaskParams{}, mp)
}
