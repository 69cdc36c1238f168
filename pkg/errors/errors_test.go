package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed in this context")
	err := NewParseError("ocean.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "ocean.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "ocean.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: missing.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("colors.primary.light", "must be a hex colour", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "colors.primary.light", validationErr.Field)
	require.Equal(t, "validation error: colors.primary.light: must be a hex colour", err.Error())
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("boom")
	err := NewValidationError("", "theme is empty", underlying)
	require.Equal(t, "validation error: theme is empty", err.Error())
	require.ErrorIs(t, err, underlying)
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
}
