// Package idlist implements the LinkTargetIDList: a length-prefixed
// sequence of opaque shell-item identifiers terminated by a zero-length
// marker.
package idlist

import (
	"github.com/captain-woof/lnk-manipulator/pkg/codec"
	"github.com/captain-woof/lnk-manipulator/pkg/lnkerr"
)

// ItemID is one opaque shell-item identifier. Payload excludes the 2-byte
// size prefix that precedes it on the wire.
type ItemID struct {
	Payload []byte
}

// IDList is the ordered sequence of ItemID records carried by a Shell Link
// whose LinkFlags.HasLinkTargetIDList bit is set.
type IDList struct {
	Items []ItemID
}

// Parse decodes an IDList starting at off, where buf[off:off+2] is the
// id_list_size field. It returns the list and the number of bytes consumed
// from off, including the size field and the terminator.
func Parse(buf []byte, off int) (*IDList, int, error) {
	size, err := codec.ReadU16LE(buf, off)
	if err != nil {
		return nil, 0, err
	}
	end := off + 2 + int(size)
	if end > len(buf) {
		return nil, 0, lnkerr.Truncated(off, "IDList")
	}

	list := &IDList{}
	pos := off + 2
	for {
		itemSize, err := codec.ReadU16LE(buf, pos)
		if err != nil {
			return nil, 0, err
		}
		if itemSize == 0 {
			pos += 2
			break
		}
		if itemSize == 1 {
			return nil, 0, lnkerr.BadItemSize(pos, itemSize)
		}
		payloadStart := pos + 2
		payloadEnd := pos + int(itemSize)
		if payloadEnd > len(buf) {
			return nil, 0, lnkerr.Truncated(pos, "ItemID payload")
		}
		payload := make([]byte, itemSize-2)
		copy(payload, buf[payloadStart:payloadEnd])
		list.Items = append(list.Items, ItemID{Payload: payload})
		pos = payloadEnd
	}

	return list, pos - off, nil
}

// Serialize encodes the IDList, including its leading size field and
// trailing zero terminator.
func (l *IDList) Serialize() []byte {
	total := 2
	for _, item := range l.Items {
		total += 2 + len(item.Payload)
	}
	total += 2 // terminator

	out := make([]byte, 0, total)
	out = codec.WriteU16LE(out, uint16(total-2))
	for _, item := range l.Items {
		out = codec.WriteU16LE(out, uint16(2+len(item.Payload)))
		out = append(out, item.Payload...)
	}
	out = codec.WriteU16LE(out, 0)
	return out
}
