package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructorsCarryStatus(t *testing.T) {
	require.Equal(t, 400, Invalid("bad input").Status)
	require.Equal(t, 404, NotFound("missing").Status)
	require.Equal(t, 409, Conflict("taken").Status)
	require.Equal(t, 500, Store("query failed", errors.New("disk io")).Status)
}

func TestErrorStringIncludesCause(t *testing.T) {
	err := Store("query failed", errors.New("disk io"))
	require.Equal(t, "query failed: disk io", err.Error())
	require.Equal(t, "missing", NotFound("missing").Error())
}

func TestStatusOfUnwrapsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("list products: %w", Conflict("duplicate code"))
	require.Equal(t, 409, StatusOf(wrapped))
}

func TestStatusOfDefaultsToStoreFailure(t *testing.T) {
	require.Equal(t, 500, StatusOf(errors.New("plain")))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("locked")
	require.ErrorIs(t, Store("write failed", cause), cause)
}

func TestMessageOf(t *testing.T) {
	require.Equal(t, "", MessageOf(nil))
	require.Equal(t, "duplicate code", MessageOf(Conflict("duplicate code")))
}
