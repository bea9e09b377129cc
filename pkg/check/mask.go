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
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/model-preflight/pkg/errors"
)

// Recognized mask-parameter keys.
const (
	KeyFeaturesToHide = "features_to_hide"
	KeyThreshold      = "threshold"
	KeyPositive       = "positive"
	KeyMaxContrib     = "max_contrib"
)

// MaskParamKeys is the closed set of keys a mask-parameter mapping may carry.
var MaskParamKeys = []string{
	KeyFeaturesToHide,
	KeyThreshold,
	KeyPositive,
	KeyMaxContrib,
}

// MaskParams is the filtering configuration applied when summarizing local
// explainability. All fields are optional; no defaulting happens at
// validation time.
type MaskParams struct {
	// FeaturesToHide lists technical feature names excluded from summaries.
	FeaturesToHide []string `json:"features_to_hide" yaml:"features_to_hide"`

	// Threshold is the minimum absolute contribution retained.
	Threshold *float64 `json:"threshold" yaml:"threshold"`

	// Positive restricts summaries to positive (true) or negative (false)
	// contributions.
	Positive *bool `json:"positive" yaml:"positive"`

	// MaxContrib caps the number of contributions retained per row.
	MaxContrib *int `json:"max_contrib" yaml:"max_contrib"`
}

// MaskParameters checks that a mask-parameter value respects the expected
// format: it must be a mapping, and its keys must all belong to
// MaskParamKeys. Typed MaskParams values pass by construction. Missing keys
// are not filled in here; defaulting is a downstream concern.
func MaskParameters(params any) error {
	switch p := params.(type) {
	case MaskParams, *MaskParams:
		return nil
	case map[string]any:
		return checkMaskKeys(keysOf(p))
	case map[string]string:
		return checkMaskKeys(keysOf(p))
	default:
		return errors.Newf(errors.ErrCodeInvalidRequest,
			"mask_params must be a mapping, got %T", params)
	}
}

// MaskParamsFromMap validates a raw mask-parameter mapping and converts it to
// its typed form. Values of the wrong type are rejected; absent keys stay
// unset.
func MaskParamsFromMap(m map[string]any) (*MaskParams, error) {
	if m == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "mask_params must be a mapping")
	}
	if err := checkMaskKeys(keysOf(m)); err != nil {
		return nil, err
	}

	mp := &MaskParams{}

	if raw, ok := m[KeyFeaturesToHide]; ok && raw != nil {
		features, err := toStringSlice(raw)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig,
				fmt.Sprintf("%s must be a list of feature names", KeyFeaturesToHide), err)
		}
		mp.FeaturesToHide = features
	}

	if raw, ok := m[KeyThreshold]; ok && raw != nil {
		switch v := raw.(type) {
		case float64:
			mp.Threshold = &v
		case int:
			f := float64(v)
			mp.Threshold = &f
		default:
			return nil, errors.Newf(errors.ErrCodeInvalidConfig,
				"%s must be numeric, got %T", KeyThreshold, raw)
		}
	}

	if raw, ok := m[KeyPositive]; ok && raw != nil {
		v, ok := raw.(bool)
		if !ok {
			return nil, errors.Newf(errors.ErrCodeInvalidConfig,
				"%s must be a boolean, got %T", KeyPositive, raw)
		}
		mp.Positive = &v
	}

	if raw, ok := m[KeyMaxContrib]; ok && raw != nil {
		switch v := raw.(type) {
		case int:
			mp.MaxContrib = &v
		case float64:
			n := int(v)
			if float64(n) != v {
				return nil, errors.Newf(errors.ErrCodeInvalidConfig,
					"%s must be an integer, got %v", KeyMaxContrib, v)
			}
			mp.MaxContrib = &n
		default:
			return nil, errors.Newf(errors.ErrCodeInvalidConfig,
				"%s must be an integer, got %T", KeyMaxContrib, raw)
		}
	}

	return mp, nil
}

// LoadMaskParams decodes mask parameters from a YAML document, rejecting
// unknown keys.
func LoadMaskParams(data []byte) (*MaskParams, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var mp MaskParams
	if err := dec.Decode(&mp); err != nil {
		if err == io.EOF {
			return &MaskParams{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig,
			"invalid mask params document", err)
	}
	return &mp, nil
}

func checkMaskKeys(keys []string) error {
	allowed := make(map[string]struct{}, len(MaskParamKeys))
	for _, k := range MaskParamKeys {
		allowed[k] = struct{}{}
	}

	var unknown []string
	for _, k := range keys {
		if _, ok := allowed[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)

	msg := fmt.Sprintf("mask_params must only have the following keys: %s; unknown key %q%s",
		strings.Join(MaskParamKeys, ", "), unknown[0], suggestKey(unknown[0], MaskParamKeys))
	return errors.NewWithContext(errors.ErrCodeInvalidConfig, msg, map[string]any{
		"unknown_keys": unknown,
		"allowed_keys": MaskParamKeys,
	})
}

func keysOf[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func toStringSlice(raw any) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("element %v is %T, not a string", e, e)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("value is %T, not a list", raw)
	}
}
