package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateCodes(t *testing.T) {
	require.Len(t, StateCodes, 51)
	require.True(t, IsValidState("TX"))
	require.True(t, IsValidState("DC"))
	require.False(t, IsValidState("ZZ"))
	require.False(t, IsValidState("tx"))
	require.False(t, IsValidState(""))
}
