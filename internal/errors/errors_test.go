package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	// Test creating a new error
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	// Test creating a new formatted error
	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	// Check that the error is an ApplicationError
	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, "formatted error", appErr.Error())
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	// Test wrapping an error
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	// Test unwrapping
	unwrappedErr := Unwrap(wrappedErr)
	assert.Equal(t, origErr, unwrappedErr)

	// Test wrapped formatted error
	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.NotNil(t, wrappedFormatted)
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Test wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	// Test deeper wrapping
	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())

	// Test Is function
	assert.True(t, Is(wrappedErr, origErr))
	assert.True(t, Is(deepWrapped, origErr))
}

func TestPathError(t *testing.T) {
	// Test creating a path error
	pathErr := NewPathError("cannot access", "/path/to/file", AccessDenied, nil)
	assert.NotNil(t, pathErr)
	assert.Equal(t, "cannot access: /path/to/file", pathErr.Error())
	assert.Equal(t, "/path/to/file", pathErr.Path())
	assert.Equal(t, AccessDenied, pathErr.Kind())

	// Test with wrapped error
	origErr := fmt.Errorf("permission denied")
	pathErr = NewPathError("cannot access", "/path/to/file", AccessDenied, origErr)
	assert.Equal(t, "cannot access: /path/to/file: permission denied", pathErr.Error())
	assert.Equal(t, origErr, Unwrap(pathErr))

	// Test predefined errors
	assert.Equal(t, "path not found", ErrNotFound.Error())
	assert.Equal(t, NotFound, ErrNotFound.Kind())

	// Test IsNotFound predicate
	notFoundErr := NewPathError("path not found", "/missing/file", NotFound, nil)
	assert.True(t, IsNotFound(notFoundErr))
	assert.False(t, IsNotFound(pathErr)) // This is AccessDenied

	// Test IsAccessDenied predicate
	assert.True(t, IsAccessDenied(pathErr))
	assert.False(t, IsAccessDenied(notFoundErr))

	// Test As for PathError
	var pe *PathError
	assert.True(t, As(pathErr, &pe))
	assert.Equal(t, "/path/to/file", pe.Path())
}

func TestDecodeAndSizeKinds(t *testing.T) {
	decodeErr := NewPathError("not valid text", "/data/blob.bin", DecodeFailed, nil)
	assert.True(t, IsDecodeFailed(decodeErr))
	assert.False(t, IsDecodeFailed(New("plain error")))

	largeErr := NewPathError("file too large", "/data/huge.log", TooLarge, nil)
	assert.True(t, IsTooLarge(largeErr))
	assert.False(t, IsTooLarge(decodeErr))

	notDirErr := NewPathError("not a directory", "/data/blob.bin", NotDirectory, nil)
	assert.True(t, IsNotDirectory(notDirErr))
	assert.False(t, IsNotDirectory(largeErr))
}

func TestConfigError(t *testing.T) {
	// Test creating a config error
	configErr := NewConfigError("invalid value", "interval", InvalidConfig, nil)
	assert.NotNil(t, configErr)
	assert.Equal(t, "invalid value: interval", configErr.Error())
	assert.Equal(t, "interval", configErr.Param())
	assert.Equal(t, InvalidConfig, configErr.Kind())

	// Test with wrapped error
	origErr := fmt.Errorf("value out of range")
	configErr = NewConfigError("invalid value", "interval", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: interval: value out of range", configErr.Error())
	assert.Equal(t, origErr, Unwrap(configErr))

	// Test predefined errors
	assert.Equal(t, "invalid configuration", ErrInvalidConfig.Error())
	assert.Equal(t, InvalidConfig, ErrInvalidConfig.Kind())

	// Test IsInvalidConfig predicate
	assert.True(t, IsInvalidConfig(configErr))
	assert.False(t, IsInvalidConfig(New("some other error")))

	// Test As for ConfigError
	var ce *ConfigError
	assert.True(t, As(configErr, &ce))
	assert.Equal(t, "interval", ce.Param())
}

func TestErrorChains(t *testing.T) {
	// Create a chain of errors
	baseErr := errors.New("base error")
	pathErr := NewPathError("path error", "/path/to/file", NotFound, baseErr)
	configErr := NewConfigError("config error", "start_dir", InvalidConfig, pathErr)

	// Test complete error message
	assert.Equal(t, "config error: start_dir: path error: /path/to/file: base error", configErr.Error())

	// Test Is function through the chain
	assert.True(t, Is(configErr, baseErr))
	assert.True(t, Is(configErr, pathErr))

	// Test As function through the chain
	var pe *PathError
	assert.True(t, As(configErr, &pe))
	assert.Equal(t, "/path/to/file", pe.Path())

	var ce *ConfigError
	assert.True(t, As(configErr, &ce))
	assert.Equal(t, "start_dir", ce.Param())

	// Test error predicates through the chain
	assert.True(t, IsNotFound(configErr))
	assert.True(t, IsInvalidConfig(configErr))
}
