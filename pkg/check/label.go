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
)

// LabelDict checks that a label-renaming dictionary matches the model's class
// set. Only classification problems with a non-nil dictionary are checked:
// the dictionary's key set must equal the class label set exactly, in any
// order.
func LabelDict(labelDict map[any]string, kind model.ProblemKind, classes []any) error {
	if labelDict == nil || kind != model.Classification {
		return nil
	}

	keys := make([]any, 0, len(labelDict))
	for k := range labelDict {
		keys = append(keys, k)
	}

	if sameSet(keys, classes) {
		return nil
	}
	return errors.NewWithContext(errors.ErrCodeInconsistentDictionary,
		fmt.Sprintf("label_dict and model classes do not match: label_dict keys %v, model classes %v",
			sortedLiterals(keys), sortedLiterals(classes)),
		map[string]any{
			"label_dict_keys": sortedLiterals(keys),
			"classes":         sortedLiterals(classes),
		})
}

// ModelLabel checks that every label-dictionary key is a known column
// position of the columns dictionary.
func ModelLabel(columnsDict map[int]string, labelDict map[any]string) error {
	if labelDict == nil {
		return nil
	}

	for k := range labelDict {
		pos, ok := asInt(k)
		if ok {
			_, ok = columnsDict[pos]
		}
		if !ok {
			return errors.NewWithContext(errors.ErrCodeInconsistentDictionary,
				fmt.Sprintf("label_dict key %v is not a column of columns_dict", k),
				map[string]any{"label_dict_key": k})
		}
	}
	return nil
}

// sameSet reports whether a and b hold the same elements regardless of order
// or duplication. Elements are compared by their literal representation so
// that mixed int widths compare by value.
func sameSet(a, b []any) bool {
	as := make(map[string]struct{}, len(a))
	for _, v := range a {
		as[fmt.Sprint(v)] = struct{}{}
	}
	bs := make(map[string]struct{}, len(b))
	for _, v := range b {
		bs[fmt.Sprint(v)] = struct{}{}
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

// sortedLiterals renders values to their literal form in sorted order for
// stable error messages.
func sortedLiterals(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	sort.Strings(out)
	return out
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}
