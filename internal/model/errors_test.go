package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorErrorWithCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NewParseError(ErrIORead, "src/main.go", cause)
	assert.Equal(t, "IORead: src/main.go: unexpected EOF", err.Error())
}

func TestParseErrorErrorWithoutCause(t *testing.T) {
	err := NewParseError(ErrLanguageUnavailable, "src/main.kt", nil)
	assert.Equal(t, "LanguageUnavailable: src/main.kt", err.Error())
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewParseError(ErrParseSyntaxError, "a.py", cause)
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestParseErrorUnwrapNilCause(t *testing.T) {
	err := NewParseError(ErrWalkFailure, "root", nil)
	assert.Nil(t, errors.Unwrap(err))
}

func TestParseErrorErrorsAsRoundTrip(t *testing.T) {
	var target *ParseError
	wrapped := errors.New("wrapper: " + NewParseError(ErrParseTimeout, "slow.go", nil).Error())
	assert.False(t, errors.As(wrapped, &target))

	var pe error = NewParseError(ErrParseTimeout, "slow.go", nil)
	assert.True(t, errors.As(pe, &target))
	assert.Equal(t, ErrParseTimeout, target.Kind)
}
