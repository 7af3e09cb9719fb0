package lnk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/captain-woof/lnk-manipulator/internal/fuzzgen"
	"github.com/captain-woof/lnk-manipulator/pkg/consts"
)

func TestNewShellLinkSerializesToMinimalHeader(t *testing.T) {
	sl := New()
	out, err := Serialize(sl)
	require.NoError(t, err)
	require.Len(t, out, consts.HeaderSize)

	parsed, err := Parse(out)
	require.NoError(t, err)
	require.False(t, parsed.Header.LinkFlags.HasLinkTargetIDList())
	require.Nil(t, parsed.IDList)
}

func TestRoundTripAcrossPresenceCombinations(t *testing.T) {
	for _, c := range fuzzgen.Cases() {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			sl := &ShellLink{Header: fuzzgen.Build(c)}
			if c.HasIDList {
				sl.IDList = fuzzgen.BuildIDList()
			}
			sl.LinkInfo = fuzzgen.BuildLinkInfo(c)
			sl.StringData = fuzzgen.BuildStringData(c)

			out, err := Serialize(sl)
			require.NoError(t, err)

			parsed, err := Parse(out)
			require.NoError(t, err)

			out2, err := Serialize(parsed)
			require.NoError(t, err)
			require.Equal(t, out, out2)
		})
	}
}

func TestTargetPathLocalVolume(t *testing.T) {
	sl := New()
	sl.LinkInfo = fuzzgen.BuildLinkInfo(fuzzgen.Case{HasLinkInfo: true})
	require.Equal(t, `C:\Program Files\App\app.exe`, sl.TargetPath())
}

func TestTargetPathNetworkShare(t *testing.T) {
	sl := New()
	sl.LinkInfo = fuzzgen.BuildLinkInfo(fuzzgen.Case{HasLinkInfo: true, HasCNRL: true})
	require.Equal(t, `\\server\share\dir\file.txt`, sl.TargetPath())
}

func TestTargetPathNoLinkInfo(t *testing.T) {
	sl := New()
	require.Equal(t, "", sl.TargetPath())
}
