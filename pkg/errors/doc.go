// Package errors provides structured error types for better observability
// and programmatic error handling across the validation library.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInconsistentDictionary,
//	    "label_dict keys do not match model classes",
//	    map[string]interface{}{
//	        "label_dict_keys": keys,
//	        "classes": classes,
//	    },
//	)
package errors
