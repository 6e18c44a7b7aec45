package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomainError_WrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("list pulls: %w", WrapDomainError(ErrorCodeNetwork, "request failed", cause))

	require.ErrorIs(t, err, cause)
	require.True(t, IsCode(err, ErrorCodeNetwork))
	require.False(t, IsCode(err, ErrorCodeAPI))
	require.Contains(t, err.Error(), "request failed: connection refused")
}

func TestIsCode_PlainError(t *testing.T) {
	require.False(t, IsCode(errors.New("boom"), ErrorCodeAPI))
	require.False(t, IsCode(nil, ErrorCodeAPI))
}
