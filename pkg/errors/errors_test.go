package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCodeThroughFmtWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("resolve: %w", Wrap(CodeUpstream, "geocoding request failed", cause))

	require.True(t, IsCode(err, CodeUpstream))
	require.False(t, IsCode(err, CodeNotFound))
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "geocoding request failed: connection refused")
}

func TestCodeOfPlainError(t *testing.T) {
	require.Equal(t, "", CodeOf(errors.New("boom")))
	require.Equal(t, "", CodeOf(nil))
	require.Equal(t, CodeNotFound, CodeOf(Wrap(CodeNotFound, "no match", nil)))
}
