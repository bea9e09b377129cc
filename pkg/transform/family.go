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
	"reflect"
	"sync"
)

// Family represents the encoding-library family a preprocessing step belongs
// to. The family determines how the step maps technical feature counts before
// and after transformation.
type Family string

const (
	// FamilyColumnTransformer is the column-selecting/combining family.
	// One-hot-style expansion may rename features, so only feature counts
	// are comparable across it.
	FamilyColumnTransformer Family = "column-transformer"

	// FamilyCategoryEncoder is the category-encoding family. It keeps
	// feature names stable, so exact name sets are comparable across it.
	FamilyCategoryEncoder Family = "category-encoder"

	// FamilyDirectEncoder is the no-dummy direct-encoding family: encoders
	// that substitute values in place without expanding columns.
	FamilyDirectEncoder Family = "direct-encoder"

	// FamilyUnknown marks a preprocessing type outside every recognized
	// family.
	FamilyUnknown Family = "unknown"
)

// Families is the list of all recognized (non-unknown) families.
var Families = []Family{
	FamilyColumnTransformer,
	FamilyCategoryEncoder,
	FamilyDirectEncoder,
}

// String returns the string representation of the Family.
func (f Family) String() string {
	return string(f)
}

// IsRecognized reports whether the family is one of the recognized families.
func (f Family) IsRecognized() bool {
	for _, known := range Families {
		if f == known {
			return true
		}
	}
	return false
}

// ParseFamily parses a string into a Family.
// Returns the Family and true if parsing succeeds, or FamilyUnknown and false
// if the string names no recognized family.
func ParseFamily(s string) (Family, bool) {
	for _, f := range Families {
		if string(f) == s {
			return f, true
		}
	}
	return FamilyUnknown, false
}

// FamilyTagged lets a transformer declare its family explicitly instead of
// being keyed by its runtime type name.
type FamilyTagged interface {
	// EncodingFamily returns the family the transformer belongs to.
	EncodingFamily() Family
}

// FamilyRegistry maps transformer runtime type names to their families with
// thread-safe operations. It backs classification of third-party transformer
// types that cannot implement FamilyTagged themselves.
type FamilyRegistry struct {
	families map[string]Family

	mu sync.RWMutex
}

// NewFamilyRegistry creates an empty FamilyRegistry.
func NewFamilyRegistry() *FamilyRegistry {
	return &FamilyRegistry{
		families: make(map[string]Family),
	}
}

// Register registers the family of a transformer type by its type name.
func (r *FamilyRegistry) Register(typeName string, family Family) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.families[typeName] = family
}

// RegisterType registers the family of the sample value's runtime type.
func (r *FamilyRegistry) RegisterType(sample any, family Family) {
	if sample == nil {
		return
	}
	r.Register(reflect.TypeOf(sample).String(), family)
}

// Lookup retrieves the family registered for a type name.
func (r *FamilyRegistry) Lookup(typeName string) (Family, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.families[typeName]
	return f, ok
}

// Count returns the number of registered type names.
func (r *FamilyRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.families)
}

// defaultFamilies serves FamilyOf lookups for transformer types registered at
// package level.
var defaultFamilies = NewFamilyRegistry()

// RegisterFamily registers a transformer type name's family in the default
// registry used by FamilyOf.
func RegisterFamily(typeName string, family Family) {
	defaultFamilies.Register(typeName, family)
}

// FamilyOf classifies a preprocessing step. Resolution order: the step's own
// FamilyTagged declaration, the ColumnTransformer interface, the default
// family registry keyed by runtime type name. Everything else, including nil,
// is FamilyUnknown.
func FamilyOf(step any) Family {
	if step == nil {
		return FamilyUnknown
	}
	if tagged, ok := step.(FamilyTagged); ok {
		return tagged.EncodingFamily()
	}
	if _, ok := step.(ColumnTransformer); ok {
		return FamilyColumnTransformer
	}
	if f, ok := defaultFamilies.Lookup(reflect.TypeOf(step).String()); ok {
		return f
	}
	return FamilyUnknown
}
