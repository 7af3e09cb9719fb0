// Package stringdata implements StringData: up to five consecutive
// length-prefixed strings whose presence is gated by the header's LinkFlags
// bits and whose character width is inherited from the header's Unicode
// bit, not chosen per string.
package stringdata

import (
	"unicode/utf16"

	"github.com/captain-woof/lnk-manipulator/pkg/codec"
	"github.com/captain-woof/lnk-manipulator/pkg/lnkerr"
)

// StringData holds the five potentially-present counted strings, in their
// fixed wire order.
type StringData struct {
	Name         *string
	RelativePath *string
	WorkingDir   *string
	Arguments    *string
	IconLocation *string
}

// Presence mirrors the header bits that gate each field, passed in so this
// package stays independent of the header package.
type Presence struct {
	Name         bool
	RelativePath bool
	WorkingDir   bool
	Arguments    bool
	IconLocation bool
}

// Parse decodes StringData starting at off, reading each present string as
// unicode-width characters when unicode is true, single-byte otherwise. It
// returns the record and the number of bytes consumed.
func Parse(buf []byte, off int, presence Presence, unicode bool) (*StringData, int, error) {
	sd := &StringData{}
	pos := off

	readOne := func() (string, error) {
		count, err := codec.ReadU16LE(buf, pos)
		if err != nil {
			return "", err
		}
		pos += 2
		if count == 0 {
			return "", nil
		}
		width := codec.Narrow
		n := int(count)
		if unicode {
			width = codec.Wide
			n = int(count) * 2
		}
		if pos+n > len(buf) {
			return "", lnkerr.Truncated(pos, "CountedString")
		}
		s, consumed, err := readCountedString(buf, pos, width, int(count))
		if err != nil {
			return "", err
		}
		pos += consumed
		return s, nil
	}

	if presence.Name {
		s, err := readOne()
		if err != nil {
			return nil, 0, err
		}
		sd.Name = &s
	}
	if presence.RelativePath {
		s, err := readOne()
		if err != nil {
			return nil, 0, err
		}
		sd.RelativePath = &s
	}
	if presence.WorkingDir {
		s, err := readOne()
		if err != nil {
			return nil, 0, err
		}
		sd.WorkingDir = &s
	}
	if presence.Arguments {
		s, err := readOne()
		if err != nil {
			return nil, 0, err
		}
		sd.Arguments = &s
	}
	if presence.IconLocation {
		s, err := readOne()
		if err != nil {
			return nil, 0, err
		}
		sd.IconLocation = &s
	}

	return sd, pos - off, nil
}

// readCountedString decodes exactly charCount characters of the given
// width starting at off, with no trailing terminator expected — the
// count, not a NUL, is authoritative. It returns the decoded string and
// the number of bytes consumed.
func readCountedString(buf []byte, off int, width codec.CharWidth, charCount int) (string, int, error) {
	if width == codec.Narrow {
		if off+charCount > len(buf) {
			return "", 0, lnkerr.Truncated(off, "narrow CountedString")
		}
		return string(buf[off : off+charCount]), charCount, nil
	}

	units := make([]uint16, charCount)
	for i := 0; i < charCount; i++ {
		u, err := codec.ReadU16LE(buf, off+2*i)
		if err != nil {
			return "", 0, err
		}
		units[i] = u
	}
	if err := codec.ValidateSurrogates(units, off); err != nil {
		return "", 0, err
	}
	return string(utf16.Decode(units)), charCount * 2, nil
}

// Serialize encodes every present field, in fixed wire order, with
// char_count and character width chosen by unicode (the containing
// header's IsUnicode bit).
func (sd *StringData) Serialize(unicode bool) []byte {
	var out []byte
	for _, s := range []*string{sd.Name, sd.RelativePath, sd.WorkingDir, sd.Arguments, sd.IconLocation} {
		if s == nil {
			continue
		}
		out = appendCountedString(out, *s, unicode)
	}
	return out
}

func appendCountedString(dst []byte, s string, unicode bool) []byte {
	if !unicode {
		dst = codec.WriteU16LE(dst, uint16(len(s)))
		return append(dst, []byte(s)...)
	}
	units := utf16.Encode([]rune(s))
	dst = codec.WriteU16LE(dst, uint16(len(units)))
	for _, u := range units {
		dst = codec.WriteU16LE(dst, u)
	}
	return dst
}
