package lnkerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatErrorMessage(t *testing.T) {
	err := Truncated(0x4C, "LinkInfo")
	require.EqualError(t, err, "lnk: truncated: short buffer reading LinkInfo at byte offset 0x4c")
}

func TestFormatErrorNoOffset(t *testing.T) {
	err := TooLarge("LinkInfo exceeds 32-bit size field")
	require.EqualError(t, err, "lnk: too large: LinkInfo exceeds 32-bit size field")
}

func TestIsMatchesByKind(t *testing.T) {
	a := Truncated(4, "u32")
	b := Truncated(100, "u16")
	require.True(t, errors.Is(a, b))

	c := BadClsid(0, "bad")
	require.False(t, errors.Is(a, c))
}
