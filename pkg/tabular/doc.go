// Package tabular provides the minimal Frame and Series containers the
// preflight validators operate on: numeric tables with named, typed columns
// and an ordered row index.
//
// The containers are deliberately small. They carry just enough structure to
// express the shape, type, and index-alignment contracts that validation
// enforces; they are not a dataframe library.
package tabular
