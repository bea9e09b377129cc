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

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeUnsupportedModel indicates the model exposes no prediction
	// capability, or a probability capability without a resolvable class set.
	ErrCodeUnsupportedModel ErrorCode = "UNSUPPORTED_MODEL"
	// ErrCodeInconsistentDictionary indicates two structures that must share
	// an exact key or value set disagree.
	ErrCodeInconsistentDictionary ErrorCode = "INCONSISTENT_DICTIONARY"
	// ErrCodeLengthMismatch indicates two structures that must share a count
	// disagree.
	ErrCodeLengthMismatch ErrorCode = "LENGTH_MISMATCH"
	// ErrCodeTypeShape indicates an object's container kind does not match
	// what the problem type requires.
	ErrCodeTypeShape ErrorCode = "TYPE_SHAPE"
	// ErrCodeInvalidConfig indicates a configuration mapping contains
	// unrecognized keys or malformed values.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeUnsupportedEncoder indicates a preprocessing type outside any
	// recognized encoder family.
	ErrCodeUnsupportedEncoder ErrorCode = "UNSUPPORTED_ENCODER"
	// ErrCodeUnsupportedOption indicates a recognized transformer uses an
	// incompatible option value.
	ErrCodeUnsupportedOption ErrorCode = "UNSUPPORTED_OPTION"
	// ErrCodeIndexMismatch indicates the row index of a prediction object
	// does not align with the reference feature table.
	ErrCodeIndexMismatch ErrorCode = "INDEX_MISMATCH"
	// ErrCodeInvalidRequest indicates malformed or invalid input, such as a
	// non-mapping value where a mapping is required.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new StructuredError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// IsCode reports whether err is (or wraps) a StructuredError with the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// CodeOf returns the ErrorCode of err if it is (or wraps) a StructuredError,
// or the empty code otherwise.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}
