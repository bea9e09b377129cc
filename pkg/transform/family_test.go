package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// Test doubles for the recognized families.

type ordinalEncoder struct{}

func (ordinalEncoder) Fit(x mat.Matrix) error                  { return nil }
func (ordinalEncoder) Transform(x mat.Matrix) (mat.Matrix, error) { return x, nil }
func (ordinalEncoder) EncodingFamily() Family                  { return FamilyCategoryEncoder }

type columnRouter struct {
	assignments []ColumnAssignment
}

func (columnRouter) Fit(x mat.Matrix) error                  { return nil }
func (columnRouter) Transform(x mat.Matrix) (mat.Matrix, error) { return x, nil }
func (c columnRouter) Assignments() []ColumnAssignment       { return c.assignments }

type mysteryStep struct{}

func (mysteryStep) Fit(x mat.Matrix) error                  { return nil }
func (mysteryStep) Transform(x mat.Matrix) (mat.Matrix, error) { return x, nil }

type vendorEncoder struct{}

func (vendorEncoder) Fit(x mat.Matrix) error                  { return nil }
func (vendorEncoder) Transform(x mat.Matrix) (mat.Matrix, error) { return x, nil }

func TestFamilyOf(t *testing.T) {
	assert.Equal(t, FamilyCategoryEncoder, FamilyOf(ordinalEncoder{}))
	assert.Equal(t, FamilyColumnTransformer, FamilyOf(columnRouter{}))
	assert.Equal(t, FamilyUnknown, FamilyOf(mysteryStep{}))
	assert.Equal(t, FamilyUnknown, FamilyOf(nil))
}

func TestFamilyOfRegisteredTypeName(t *testing.T) {
	reg := NewFamilyRegistry()
	reg.RegisterType(vendorEncoder{}, FamilyDirectEncoder)

	f, ok := reg.Lookup("transform.vendorEncoder")
	assert.True(t, ok)
	assert.Equal(t, FamilyDirectEncoder, f)

	// The default registry consulted by FamilyOf is package level.
	RegisterFamily("transform.vendorEncoder", FamilyDirectEncoder)
	assert.Equal(t, FamilyDirectEncoder, FamilyOf(vendorEncoder{}))
}

func TestParseFamily(t *testing.T) {
	f, ok := ParseFamily("category-encoder")
	assert.True(t, ok)
	assert.Equal(t, FamilyCategoryEncoder, f)

	f, ok = ParseFamily("rocket-science")
	assert.False(t, ok)
	assert.Equal(t, FamilyUnknown, f)
}

func TestFamilyIsRecognized(t *testing.T) {
	assert.True(t, FamilyColumnTransformer.IsRecognized())
	assert.False(t, FamilyUnknown.IsRecognized())
}

func TestAssignmentDrops(t *testing.T) {
	assert.True(t, ColumnAssignment{Name: "remainder", Transformer: RemainderDrop}.Drops())
	assert.True(t, ColumnAssignment{Name: "remainder", Transformer: "drop"}.Drops())
	assert.False(t, ColumnAssignment{Name: "remainder", Transformer: RemainderPassthrough}.Drops())
	assert.False(t, ColumnAssignment{Name: "num", Transformer: ordinalEncoder{}}.Drops())
}
