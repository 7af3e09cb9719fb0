package stringdata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/captain-woof/lnk-manipulator/pkg/lnkerr"
)

func TestEmptyStringOccupiesTwoBytes(t *testing.T) {
	buf := []byte{0x00, 0x00, 0xFF} // char_count=0, trailing junk
	sd, n, err := Parse(buf, 0, Presence{Name: true}, false)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.NotNil(t, sd.Name)
	require.Equal(t, "", *sd.Name)
}

func TestUnicodeNameOnly(t *testing.T) {
	// char_count=3, "ABC" as UTF-16LE
	buf := []byte{0x03, 0x00, 0x41, 0x00, 0x42, 0x00, 0x43, 0x00}
	sd, n, err := Parse(buf, 0, Presence{Name: true}, true)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, "ABC", *sd.Name)
}

func TestNarrowMultipleFieldsRoundTrip(t *testing.T) {
	name := "My Shortcut"
	args := "--flag value"
	sd := &StringData{Name: &name, Arguments: &args}

	out := sd.Serialize(false)
	parsed, n, err := Parse(out, 0, Presence{Name: true, Arguments: true}, false)
	require.NoError(t, err)
	require.Equal(t, len(out), n)
	require.Equal(t, name, *parsed.Name)
	require.Equal(t, args, *parsed.Arguments)
}

func TestUnicodeRoundTripAllFields(t *testing.T) {
	name, rel, wd, args, icon := "name", "rel\\path", "C:\\wd", "-x", "icon.ico"
	sd := &StringData{
		Name:         &name,
		RelativePath: &rel,
		WorkingDir:   &wd,
		Arguments:    &args,
		IconLocation: &icon,
	}
	presence := Presence{Name: true, RelativePath: true, WorkingDir: true, Arguments: true, IconLocation: true}

	out := sd.Serialize(true)
	parsed, n, err := Parse(out, 0, presence, true)
	require.NoError(t, err)
	require.Equal(t, len(out), n)
	require.Equal(t, name, *parsed.Name)
	require.Equal(t, rel, *parsed.RelativePath)
	require.Equal(t, wd, *parsed.WorkingDir)
	require.Equal(t, args, *parsed.Arguments)
	require.Equal(t, icon, *parsed.IconLocation)
}

func TestNoFieldsPresentConsumesNothing(t *testing.T) {
	sd, n, err := Parse([]byte{0xAA, 0xBB}, 0, Presence{}, false)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Nil(t, sd.Name)
}

func TestUnpairedHighSurrogateIsBadEncoding(t *testing.T) {
	// char_count=1, a lone high surrogate (0xD800) with no following low surrogate.
	buf := []byte{0x01, 0x00, 0x00, 0xD8}
	_, _, err := Parse(buf, 0, Presence{Name: true}, true)
	require.Error(t, err)
	require.True(t, errors.Is(err, &lnkerr.FormatError{Kind: lnkerr.KindBadEncoding}))
}

func TestDanglingLowSurrogateIsBadEncoding(t *testing.T) {
	// char_count=1, a lone low surrogate (0xDC00) with no preceding high surrogate.
	buf := []byte{0x01, 0x00, 0x00, 0xDC}
	_, _, err := Parse(buf, 0, Presence{Name: true}, true)
	require.Error(t, err)
	require.True(t, errors.Is(err, &lnkerr.FormatError{Kind: lnkerr.KindBadEncoding}))
}
