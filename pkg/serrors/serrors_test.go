package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"unitconv/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrInvalidInput,
		serrors.ErrUnsupportedCategory,
		serrors.ErrUnsupportedConversion,
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrUnauthorized,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrUnsupportedConversion, "no rule for %s -> %s", "m", "°C")
	require.Equal(t, "no rule for m -> °C", e1.Error())

	e2 := serrors.Wrap(serrors.ErrInternal, base, "recording history")
	require.Equal(t, "recording history: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrInvalidInput)
	require.Equal(t, "Please enter a valid number", e3.Error())

	e4 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e4.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrInvalidInput, base, "parsing")

	require.ErrorIs(t, e, serrors.ErrInvalidInput)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnsupportedCategory)

	wrapped := fmt.Errorf("outer: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrInvalidInput)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.ErrNotFound))
	require.Equal(t, serrors.ErrUnsupportedCategory,
		serrors.KindOf(fmt.Errorf("ctx: %w", serrors.With(serrors.ErrUnsupportedCategory, "nope"))))
}

func TestUserMessage(t *testing.T) {
	require.Equal(t, "This category is not supported",
		serrors.UserMessage(serrors.KindOnly(serrors.ErrUnsupportedCategory)))
	require.Equal(t, "This conversion is not supported",
		serrors.UserMessage(fmt.Errorf("x: %w", serrors.ErrUnsupportedConversion)))
	require.Equal(t, "unknown category \"foo\"",
		serrors.UserMessage(serrors.With(serrors.ErrUnsupportedCategory, "unknown category %q", "foo")))
}

func TestParseKind(t *testing.T) {
	require.Equal(t, serrors.ErrInvalidInput, serrors.ParseKind("INVALID_INPUT"))
	require.Equal(t, serrors.ErrUnauthorized, serrors.ParseKind("UNAUTHORIZED"))
	require.Equal(t, serrors.ErrInternal, serrors.ParseKind("INTERNAL"))
	require.Nil(t, serrors.ParseKind("invalid_input"))
	require.Nil(t, serrors.ParseKind(""))
}
