// Package transform classifies preprocessing specifications by the
// encoding-library family they belong to.
//
// A preprocessing specification may be a single transformer, an ordered
// sequence of transformers, or a mapping of transformers; Flatten normalizes
// all three to an ordered slice. FamilyOf resolves each step to a closed
// Family variant via the step's own declaration, the ColumnTransformer
// interface, or a registration table keyed by runtime type name; anything
// unrecognized is FamilyUnknown and rejected downstream.
package transform
