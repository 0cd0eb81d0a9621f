// Package oaserrors provides structured error types for the oaswire library.
//
// Import path: github.com/erraggy/oaswire/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies. Every error is local and synchronous: the library
// performs no I/O, so nothing here is ever worth retrying.
//
// # Error Types
//
//   - [InvalidKeyError]: a raw string failed its key grammar (component name, path template, status code)
//   - [EncodingError]: a document could not be encoded, usually a missing required field
//   - [CallbackConstraintError]: a callback expression did not map to exactly one path
//   - [ValidationError]: OpenAPI specification violations found by strict validation
//   - [ResourceLimitError]: schema nesting exceeded the configured depth
//   - [ConfigError]: invalid encoder or builder options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidKey]: Matches any [InvalidKeyError]
//   - [ErrEncoding]: Matches any [EncodingError] and any [CallbackConstraintError]
//   - [ErrCallbackConstraint]: Matches any [CallbackConstraintError]
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Reject a bad key supplied by a caller:
//
//	if err := paths.Set(raw, item); errors.Is(err, oaserrors.ErrInvalidKey) {
//	    // ask for a path that starts with "/"
//	}
//
// Extract error details with errors.As():
//
//	var cbErr *oaserrors.CallbackConstraintError
//	if errors.As(err, &cbErr) {
//	    fmt.Printf("callback %s has %d paths\n", cbErr.Expression, cbErr.PathCount)
//	}
package oaserrors
