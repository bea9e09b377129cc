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

// Package preflight runs the full validation gate sequence an explainer
// constructor needs before accepting a model and its auxiliary structures.
//
// The individual validators live in pkg/check and can be called directly;
// this package strings them together in the order construction requires,
// fails fast on the first violation, and collects the values validation had
// to compute anyway (problem kind, class labels, normalized predictions and
// mask parameters) into a Report.
//
// # Usage
//
//	runner := preflight.New(preflight.WithVersion("v1.0.0"))
//	report, err := runner.Run(ctx, &preflight.Inputs{
//	    Model:         m,
//	    X:             features,
//	    ColumnsDict:   map[int]string{0: "age", 1: "income"},
//	    FeaturesTypes: map[string]tabular.DType{"age": tabular.DTypeInt, "income": tabular.DTypeFloat},
//	})
//	if err != nil {
//	    return err
//	}
//	// report.ProblemKind, report.Classes, report.Predictions ...
package preflight
