package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidKey indicates a raw string failed its key grammar.
	ErrInvalidKey = errors.New("invalid key")

	// ErrEncoding indicates a document could not be encoded.
	ErrEncoding = errors.New("encoding error")

	// ErrCallbackConstraint indicates a callback entry did not map to exactly one path.
	ErrCallbackConstraint = errors.New("callback constraint violation")

	// ErrValidation indicates a specification validation failure.
	ErrValidation = errors.New("validation error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// InvalidKeyError reports a raw string that does not fully match the grammar
// of the key pattern it was checked against.
type InvalidKeyError struct {
	// Key is the rejected raw string
	Key string
	// Pattern names the grammar, e.g. "componentName", "pathTemplate", "statusCode"
	Pattern string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *InvalidKeyError) Error() string {
	msg := "invalid key"
	if e.Pattern != "" {
		msg = "invalid " + e.Pattern + " key"
	}
	msg += fmt.Sprintf(" %q", e.Key)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as InvalidKeyError has no underlying cause.
func (e *InvalidKeyError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// EncodingError represents a failure to encode a document, most often a
// required field that is absent.
type EncodingError struct {
	// Path is the JSON path of the object being encoded (e.g., "paths./pets.get")
	Path string
	// Field is the specific field name with the issue
	Field string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *EncodingError) Error() string {
	msg := "encoding error"
	if e.Path != "" {
		msg += " at " + e.Path
		if e.Field != "" {
			msg += "." + e.Field
		}
	} else if e.Field != "" {
		msg += " at " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *EncodingError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

// CallbackConstraintError reports a callback expression whose nested path
// collection does not contain exactly one path.
type CallbackConstraintError struct {
	// Path is the JSON path of the callback object
	Path string
	// Expression is the runtime expression keying the offending entry
	Expression string
	// PathCount is the number of paths found under the expression
	PathCount int
}

// Error returns a human-readable error message.
func (e *CallbackConstraintError) Error() string {
	msg := "callback constraint violation"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Expression != "" {
		msg += fmt.Sprintf(": expression %q", e.Expression)
	}
	msg += fmt.Sprintf(" must map to exactly one path, found %d", e.PathCount)
	return msg
}

// Unwrap returns nil as CallbackConstraintError has no underlying cause.
func (e *CallbackConstraintError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
// A callback violation is also an encoding failure.
func (e *CallbackConstraintError) Is(target error) bool {
	return target == ErrCallbackConstraint || target == ErrEncoding
}

// ValidationError represents an OpenAPI specification violation.
type ValidationError struct {
	// Path is the JSON path to the problematic field (e.g., "paths./pets.get.responses")
	Path string
	// Field is the specific field name with the issue
	Field string
	// Value is the problematic value (may be nil)
	Value any
	// Message describes the validation failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when encoding exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "schema_depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
