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
	"fmt"
	"reflect"
	"sync"

	"github.com/NVIDIA/model-preflight/pkg/errors"
)

// Family identifies a supported model family for feature-extraction dispatch.
type Family string

// String returns the string representation of the Family.
func (f Family) String() string {
	return string(f)
}

// FeatureSpec describes a model's expected input features: either the ordered
// feature names, or only their count for families that do not retain names.
type FeatureSpec struct {
	names []string
	count int
}

// NamedFeatures creates a FeatureSpec carrying explicit feature names.
func NamedFeatures(names []string) FeatureSpec {
	out := make([]string, len(names))
	copy(out, names)
	return FeatureSpec{names: out, count: len(out)}
}

// CountedFeatures creates a FeatureSpec carrying only a feature count.
func CountedFeatures(n int) FeatureSpec {
	return FeatureSpec{count: n}
}

// Names returns the feature names and true, or nil and false for a
// count-only spec.
func (s FeatureSpec) Names() ([]string, bool) {
	if s.names == nil {
		return nil, false
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out, true
}

// Count returns the expected feature count.
func (s FeatureSpec) Count() int {
	return s.count
}

// Extractor resolves a model's expected input features.
type Extractor func(m any) (FeatureSpec, error)

// FeatureRegistry manages per-family feature extractors with thread-safe
// operations. An extractor registered for a model's family takes precedence
// over the model's own FeatureProvider/FeatureCounter capabilities.
type FeatureRegistry struct {
	extractors map[Family]Extractor

	mu sync.RWMutex
}

// NewFeatureRegistry creates an empty FeatureRegistry.
func NewFeatureRegistry() *FeatureRegistry {
	return &FeatureRegistry{
		extractors: make(map[Family]Extractor),
	}
}

// Register registers an extractor for a model family.
func (r *FeatureRegistry) Register(family Family, e Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors[family] = e
}

// Get retrieves the extractor registered for a family.
func (r *FeatureRegistry) Get(family Family) (Extractor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.extractors[family]
	return e, ok
}

// List returns all registered families.
func (r *FeatureRegistry) List() []Family {
	r.mu.RLock()
	defer r.mu.RUnlock()

	families := make([]Family, 0, len(r.extractors))
	for f := range r.extractors {
		families = append(families, f)
	}
	return families
}

// Unregister removes a family's extractor from this registry.
func (r *FeatureRegistry) Unregister(family Family) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.extractors[family]; !ok {
		return fmt.Errorf("model family %s not registered", family)
	}

	delete(r.extractors, family)
	return nil
}

// Count returns the number of registered extractors.
func (r *FeatureRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.extractors)
}

// defaultRegistry serves ExtractFeatures lookups for models whose family was
// registered at package level.
var defaultRegistry = NewFeatureRegistry()

// RegisterExtractor registers an extractor for a model family in the default
// registry used by ExtractFeatures.
func RegisterExtractor(family Family, e Extractor) {
	defaultRegistry.Register(family, e)
}

// FamilyOf returns the family tag used for extractor dispatch: the model's
// declared family when it implements FamilyTagged, its runtime type name
// otherwise.
func FamilyOf(m any) Family {
	if t, ok := m.(FamilyTagged); ok {
		return t.ModelFamily()
	}
	if m == nil {
		return ""
	}
	return Family(reflect.TypeOf(m).String())
}

// ExtractFeatures resolves a model's expected input features using reg, which
// may be nil to use the package default registry. Resolution order: a
// registered extractor for the model's family, then the model's own
// FeatureProvider or FeatureCounter capability. A model with no resolvable
// feature spec is unsupported.
func ExtractFeatures(m any, reg *FeatureRegistry) (FeatureSpec, error) {
	if reg == nil {
		reg = defaultRegistry
	}

	family := FamilyOf(m)
	if e, ok := reg.Get(family); ok {
		return e(m)
	}

	if provider, ok := m.(FeatureProvider); ok {
		return NamedFeatures(provider.FeatureNames()), nil
	}
	if counter, ok := m.(FeatureCounter); ok {
		return CountedFeatures(counter.NumFeatures()), nil
	}

	return FeatureSpec{}, errors.NewWithContext(errors.ErrCodeUnsupportedModel,
		"no feature extractor registered for model family",
		map[string]any{"family": family.String()})
}
