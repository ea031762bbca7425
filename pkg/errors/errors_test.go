// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/lintlayer/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_path_error",
			code:    errors.ErrInvalidPath,
			message: "path must be relative",
			wantStr: "[INVALID_PATH] path must be relative",
		},
		{
			name:    "invalid_override_error",
			code:    errors.ErrInvalidOverride,
			message: "override has no include patterns",
			wantStr: "[INVALID_OVERRIDE] override has no include patterns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnknownPolicyReference, "unknown policy %q in override %d", "no-moment", 3)

	want := `unknown policy "no-moment" in override 3`
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("syntax error at line 3")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigParse, "cannot parse config")

		if err.Code != errors.ErrConfigParse {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrConfigParse)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[CONFIG_PARSE] cannot parse config: syntax error at line 3"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnknownPolicyReference, "unknown policy").
		WithDetail("key", "no-moment").
		WithDetail("override", 2)

	if err.Details["key"] != "no-moment" {
		t.Errorf("WithDetail() key = %v, want %v", err.Details["key"], "no-moment")
	}

	if err.Details["override"] != 2 {
		t.Errorf("WithDetail() override = %v, want %v", err.Details["override"], 2)
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"pattern": "src/[",
		"index":   4,
	}

	err := (&errors.Error{Code: errors.ErrInvalidPattern}).WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrDuplicateKey, "error 1")
	err2 := errors.New(errors.ErrDuplicateKey, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with *Error")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrInvalidPath, "bad path"),
			code:     errors.ErrInvalidPath,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrInvalidPath, "bad path"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrConfigLoad, "cannot read"),
			code:     errors.ErrConfigLoad,
			expected: true,
		},
		{
			name:     "plain_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrInvalidPath,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrInvalidPath,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "structured_error",
			err:      errors.New(errors.ErrRegistrySealed, "sealed"),
			expected: errors.ErrRegistrySealed,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorDetails(t *testing.T) {
	err := errors.New(errors.ErrInvalidPath, "bad").WithDetail("path", "../x")
	if got := errors.GetErrorDetails(err); got["path"] != "../x" {
		t.Errorf("GetErrorDetails() path = %v, want %v", got["path"], "../x")
	}
	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails() = %v, want nil", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	patternErr := errors.Wrap(rootCause, errors.ErrInvalidPattern, "cannot compile pattern")
	overrideErr := errors.Wrap(patternErr, errors.ErrInvalidOverride, "override 2 is invalid")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(overrideErr, errors.ErrInvalidOverride) {
			t.Error("Top level should have ErrInvalidOverride code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var inner *errors.Error
		if stderrors.As(overrideErr.Unwrap(), &inner) {
			if !errors.IsErrorCode(inner, errors.ErrInvalidPattern) {
				t.Error("Middle error should have ErrInvalidPattern code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(overrideErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
