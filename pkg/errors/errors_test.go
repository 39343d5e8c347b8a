package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("loom.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "loom.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: loom.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("loom.yaml", 0, stdErrors.New("empty document"))
	require.Equal(t, "parse error: loom.yaml: empty document", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("pagination.total_pages", "must be at least 1", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "pagination.total_pages", validationErr.Field)
	require.Contains(t, err.Error(), "must be at least 1")
}

func TestInputErrorWrapsSentinel(t *testing.T) {
	t.Parallel()

	sentinel := stdErrors.New("must be positive")
	err := NewInputError("timeslot.Generate", "interval", -5, sentinel)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	require.Equal(t, "interval", inputErr.Field)
	require.Equal(t, -5, inputErr.Value)
	require.True(t, stdErrors.Is(err, sentinel))
	require.Equal(t, "timeslot.Generate: invalid interval -5: must be positive", err.Error())
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var inputErr *InputError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, inputErr.Error())
	require.Nil(t, inputErr.Unwrap())
}
