package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidKeyError(t *testing.T) {
	t.Run("Error message with pattern and message", func(t *testing.T) {
		err := &InvalidKeyError{Key: "foo/bar", Pattern: "componentName", Message: "must match ^[A-Za-z0-9._-]+$"}
		expected := `invalid componentName key "foo/bar": must match ^[A-Za-z0-9._-]+$`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &InvalidKeyError{}
		if err.Error() != `invalid key ""` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrInvalidKey", func(t *testing.T) {
		err := &InvalidKeyError{Key: "x y"}
		if !errors.Is(err, ErrInvalidKey) {
			t.Error("InvalidKeyError should match ErrInvalidKey")
		}
		if errors.Is(err, ErrEncoding) {
			t.Error("InvalidKeyError should not match ErrEncoding")
		}
	})

	t.Run("As extracts InvalidKeyError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &InvalidKeyError{Key: "6XX", Pattern: "statusCode"})
		var keyErr *InvalidKeyError
		if !errors.As(err, &keyErr) {
			t.Fatal("errors.As should succeed")
		}
		if keyErr.Key != "6XX" {
			t.Errorf("unexpected key: %s", keyErr.Key)
		}
	})
}

func TestEncodingError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("unsupported type")
		err := &EncodingError{Path: "components.schemas.Pet", Field: "default", Message: "cannot encode value", Cause: cause}
		expected := "encoding error at components.schemas.Pet.default: cannot encode value: unsupported type"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with field only", func(t *testing.T) {
		err := &EncodingError{Field: "info", Message: "required"}
		if err.Error() != "encoding error at info: required" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &EncodingError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrEncoding only", func(t *testing.T) {
		err := &EncodingError{}
		if !errors.Is(err, ErrEncoding) {
			t.Error("EncodingError should match ErrEncoding")
		}
		if errors.Is(err, ErrCallbackConstraint) {
			t.Error("EncodingError should not match ErrCallbackConstraint")
		}
	})
}

func TestCallbackConstraintError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &CallbackConstraintError{
			Path:       "paths./subscribe.post.callbacks.onEvent",
			Expression: "{$request.body#/url}",
			PathCount:  2,
		}
		expected := `callback constraint violation at paths./subscribe.post.callbacks.onEvent: expression "{$request.body#/url}" must map to exactly one path, found 2`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrCallbackConstraint and ErrEncoding", func(t *testing.T) {
		err := &CallbackConstraintError{PathCount: 2}
		if !errors.Is(err, ErrCallbackConstraint) {
			t.Error("CallbackConstraintError should match ErrCallbackConstraint")
		}
		if !errors.Is(err, ErrEncoding) {
			t.Error("CallbackConstraintError should also match ErrEncoding")
		}
		if errors.Is(err, ErrValidation) {
			t.Error("CallbackConstraintError should not match ErrValidation")
		}
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with path and field", func(t *testing.T) {
		err := &ValidationError{
			Path:    "components.securitySchemes.oauth",
			Field:   "flows",
			Message: "at least one flow is required",
		}
		expected := "validation error at components.securitySchemes.oauth.flows: at least one flow is required"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with cause", func(t *testing.T) {
		err := &ValidationError{Cause: errors.New("info: title cannot be blank.")}
		if err.Error() != "validation error: info: title cannot be blank." {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrValidation", func(t *testing.T) {
		err := &ValidationError{}
		if !errors.Is(err, ErrValidation) {
			t.Error("ValidationError should match ErrValidation")
		}
	})
}

func TestResourceLimitError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ResourceLimitError{
			ResourceType: "schema_depth",
			Limit:        64,
			Actual:       65,
			Message:      "schema nesting too deep",
		}
		expected := "resource limit exceeded: schema_depth (limit: 64, actual: 65): schema nesting too deep"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without actual", func(t *testing.T) {
		err := &ResourceLimitError{ResourceType: "schema_depth", Limit: 8}
		if err.Error() != "resource limit exceeded: schema_depth (limit: 8)" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrResourceLimit", func(t *testing.T) {
		err := &ResourceLimitError{}
		if !errors.Is(err, ErrResourceLimit) {
			t.Error("ResourceLimitError should match ErrResourceLimit")
		}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{Option: "MaxDepth", Value: 0, Message: "must be positive"}
		expected := "configuration error for MaxDepth (value: 0): must be positive"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := fmt.Errorf("encode: %w", &ConfigError{Option: "CallbackMode"})
		if !errors.Is(err, ErrConfig) {
			t.Error("wrapped ConfigError should match ErrConfig")
		}
	})
}
