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

package transform

import (
	"fmt"
	"reflect"
	"sort"
)

// Flatten normalizes a preprocessing specification to an ordered slice of
// steps. A slice yields its elements in order, a map yields its values in
// sorted key order for determinism, anything else is treated as a single
// step. Nil yields nil.
func Flatten(spec any) []any {
	if spec == nil {
		return nil
	}

	switch v := spec.(type) {
	case []any:
		out := make([]any, len(v))
		copy(out, v)
		return out
	case []Transformer:
		out := make([]any, len(v))
		for i, t := range v {
			out[i] = t
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]any, 0, len(v))
		for _, k := range keys {
			out = append(out, v[k])
		}
		return out
	}

	// Generic slices and maps of concrete transformer types.
	rv := reflect.ValueOf(spec)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			out = append(out, rv.MapIndex(k).Interface())
		}
		return out
	}

	return []any{spec}
}

// Classify inspects a preprocessing specification and reports whether it uses
// a column-combining transformer and whether it uses a category encoder. Both
// flags are nil when no preprocessing is supplied. Purely informative: there
// are no error paths.
func Classify(spec any) (usesColumnTransformer, usesCategoryEncoder *bool) {
	if spec == nil {
		return nil, nil
	}

	usesCT := false
	usesCE := false
	for _, step := range Flatten(spec) {
		switch FamilyOf(step) {
		case FamilyColumnTransformer:
			usesCT = true
		case FamilyCategoryEncoder, FamilyDirectEncoder:
			usesCE = true
		}
	}
	return &usesCT, &usesCE
}
