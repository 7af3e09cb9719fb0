package idlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEmptyIDList(t *testing.T) {
	buf := []byte{0x02, 0x00, 0x00, 0x00}
	list, n, err := Parse(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Empty(t, list.Items)
}

func TestParseSingleItemRoundTrips(t *testing.T) {
	// id_list_size=8 (item + terminator, not the size field itself),
	// item_size=6, payload AA BB CC DD, terminator
	buf := []byte{0x08, 0x00, 0x06, 0x00, 0xAA, 0xBB, 0xCC, 0xDD, 0x00, 0x00}
	list, n, err := Parse(buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Len(t, list.Items, 1)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, list.Items[0].Payload)

	out := list.Serialize()
	require.Equal(t, buf, out)
}

func TestParseRejectsBadItemSize(t *testing.T) {
	buf := []byte{0x03, 0x00, 0x01, 0x00, 0x00, 0x00}
	_, _, err := Parse(buf, 0)
	require.Error(t, err)
}

func TestSerializeMultipleItems(t *testing.T) {
	list := &IDList{Items: []ItemID{
		{Payload: []byte{0x01}},
		{Payload: []byte{0x02, 0x03}},
	}}
	out := list.Serialize()

	parsed, n, err := Parse(out, 0)
	require.NoError(t, err)
	require.Equal(t, len(out), n)
	require.Equal(t, list.Items, parsed.Items)
}

func TestParseAtOffset(t *testing.T) {
	prefix := []byte{0xDE, 0xAD}
	body := []byte{0x02, 0x00, 0x00, 0x00}
	buf := append(prefix, body...)

	list, n, err := Parse(buf, len(prefix))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Empty(t, list.Items)
}
