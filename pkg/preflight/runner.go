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

package preflight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NVIDIA/model-preflight/pkg/check"
	"github.com/NVIDIA/model-preflight/pkg/header"
	"github.com/NVIDIA/model-preflight/pkg/model"
	"github.com/NVIDIA/model-preflight/pkg/tabular"
)

const (
	// APIVersion is the API version for preflight reports.
	APIVersion = "preflight.nvidia.com/v1alpha1"
)

// Inputs bundles everything the preflight sequence validates. Model and the
// dictionaries describing its feature universe are required; the rest is
// optional and skipped when nil.
type Inputs struct {
	// Model is the model object under validation.
	Model any

	// X is the feature table predictions are aligned against.
	X *tabular.Frame

	// YPred is an optional user-supplied prediction object.
	YPred any

	// Contributions is an optional precomputed contributions object.
	Contributions any

	// LabelDict optionally maps class labels to display names.
	LabelDict map[any]string

	// FeaturesDict optionally maps technical feature names to display names.
	FeaturesDict map[string]string

	// ColumnsDict maps column positions to technical feature names.
	ColumnsDict map[int]string

	// FeaturesTypes maps technical feature names to their declared types.
	FeaturesTypes map[string]tabular.DType

	// MaskParams is an optional mask-parameter mapping, raw or typed.
	MaskParams any

	// Preprocessing is the optional preprocessing specification.
	Preprocessing any
}

// Runner evaluates the preflight gate sequence over a set of inputs.
type Runner struct {
	// Version is the runner version stamped into reports.
	Version string

	logger   *slog.Logger
	registry *model.FeatureRegistry
}

// Option is a functional option for configuring Runner instances.
type Option func(*Runner)

// WithVersion returns an Option that sets the Runner version string.
func WithVersion(version string) Option {
	return func(r *Runner) {
		r.Version = version
	}
}

// WithLogger returns an Option that sets the Runner's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithFeatureRegistry returns an Option that sets the feature extractor
// registry consulted during feature-consistency validation.
func WithFeatureRegistry(reg *model.FeatureRegistry) Option {
	return func(r *Runner) {
		r.registry = reg
	}
}

// New creates a new Runner with the provided options.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Run evaluates every preflight gate in order, failing fast on the first
// violation. The returned report carries the values validation had to compute
// anyway: the detected problem kind and classes, the preprocessing family
// flags, normalized mask parameters, and the normalized prediction table.
//
// Gate errors are returned as raised by pkg/check, with their structured
// codes intact.
func (r *Runner) Run(ctx context.Context, in *Inputs) (*Report, error) {
	start := time.Now()

	if in == nil {
		return nil, fmt.Errorf("inputs cannot be nil")
	}
	if in.Model == nil {
		return nil, fmt.Errorf("model cannot be nil")
	}

	rep := NewReport()
	rep.Init(header.KindPreflightReport, APIVersion, r.Version)
	rep.UsesColumnTransformer, rep.UsesCategoryEncoder = check.Preprocessing(in.Preprocessing)

	gates := []struct {
		name string
		run  func() error
	}{
		{GateModelRole, func() error {
			kind, classes, err := check.ModelRole(in.Model)
			if err != nil {
				return err
			}
			rep.ProblemKind = kind
			rep.Classes = classes
			return nil
		}},
		{GateLabelDict, func() error {
			return check.LabelDict(in.LabelDict, rep.ProblemKind, rep.Classes)
		}},
		{GateMaskParams, func() error {
			if in.MaskParams == nil {
				return nil
			}
			mp, err := normalizeMaskParams(in.MaskParams)
			if err != nil {
				return err
			}
			rep.MaskParams = mp
			return nil
		}},
		{GateColumnLabel, func() error {
			return check.ModelLabel(in.ColumnsDict, in.LabelDict)
		}},
		{GatePredictions, func() error {
			ypred, err := check.Predictions(in.X, in.YPred)
			if err != nil {
				return err
			}
			rep.Predictions = ypred
			return nil
		}},
		{GateContributions, func() error {
			if in.Contributions == nil {
				return nil
			}
			return check.Contributions(rep.ProblemKind, rep.Classes, in.Contributions)
		}},
		{GatePreprocessingOptions, func() error {
			return check.PreprocessingOptions(in.Preprocessing)
		}},
		{GateFeatureConsistency, func() error {
			return check.ModelFeaturesWithRegistry(in.FeaturesDict, in.Model,
				in.ColumnsDict, in.FeaturesTypes, rep.MaskParams, in.Preprocessing, r.registry)
		}},
	}

	for _, gate := range gates {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := gate.run(); err != nil {
			r.logger.Debug("preflight gate failed",
				"gate", gate.name,
				"error", err,
			)
			return nil, err
		}
		rep.Gates = append(rep.Gates, gate.name)
		r.logger.Debug("preflight gate passed", "gate", gate.name)
	}

	rep.DurationMS = time.Since(start).Milliseconds()
	r.logger.Info("preflight passed",
		"problemKind", rep.ProblemKind,
		"gates", len(rep.Gates),
		"durationMs", rep.DurationMS,
	)
	return rep, nil
}

func normalizeMaskParams(raw any) (*check.MaskParams, error) {
	switch p := raw.(type) {
	case *check.MaskParams:
		return p, nil
	case check.MaskParams:
		return &p, nil
	case map[string]any:
		return check.MaskParamsFromMap(p)
	default:
		if err := check.MaskParameters(raw); err != nil {
			return nil, err
		}
		return nil, nil
	}
}
