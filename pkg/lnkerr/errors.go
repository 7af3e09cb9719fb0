// Package lnkerr defines the error taxonomy returned by the Shell Link
// codec. Every parse error carries the byte offset of the fault, in the
// style of the standard library's debug/macho FormatError: a kind, an
// offset, and a message, satisfying error and matching any other
// *FormatError of the same kind via errors.Is.
package lnkerr

import "fmt"

// Kind enumerates the error categories a parse or serialize operation can
// fail with.
type Kind int

const (
	// KindTruncated means the buffer was shorter than required at a
	// specific stage.
	KindTruncated Kind = iota
	// KindBadClsid means a CLSID was the wrong length, or an unrecognized
	// value was supplied on write. Strict (non-lenient) header parsing also
	// reports a header-size mismatch or an unrecognized CLSID with it.
	KindBadClsid
	// KindBadItemSize means an ItemID declared a size less than 2.
	KindBadItemSize
	// KindBadFlags means a reserved bit was set where zero is required, or
	// an enumeration held an out-of-range value.
	KindBadFlags
	// KindInconsistentOffset means a self-referential offset pointed
	// outside its containing record.
	KindInconsistentOffset
	// KindBadEncoding means a string failed to decode as declared.
	KindBadEncoding
	// KindTooLarge means a size field overflowed its 32-bit wire width
	// during serialization.
	KindTooLarge
)

func (k Kind) String() string {
	switch k {
	case KindTruncated:
		return "truncated"
	case KindBadClsid:
		return "bad clsid"
	case KindBadItemSize:
		return "bad item size"
	case KindBadFlags:
		return "bad flags"
	case KindInconsistentOffset:
		return "inconsistent offset"
	case KindBadEncoding:
		return "bad encoding"
	case KindTooLarge:
		return "too large"
	default:
		return fmt.Sprintf("unknown error kind (%d)", int(k))
	}
}

// FormatError is returned by the codec when the input does not conform to
// the Shell Link Binary File Format, or when a record cannot be serialized
// back into it.
type FormatError struct {
	Kind   Kind
	Offset int
	Msg    string
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("lnk: %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("lnk: %s: %s at byte offset %#x", e.Kind, e.Msg, e.Offset)
}

// Is reports whether target is a *FormatError with the same Kind, so
// callers can write errors.Is(err, lnkerr.Truncated(0, "")) style checks
// against the constructors below, or
// errors.Is(err, &lnkerr.FormatError{Kind: lnkerr.KindTruncated}).
func (e *FormatError) Is(target error) bool {
	other, ok := target.(*FormatError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Truncated builds a KindTruncated FormatError for the given offset and
// field description.
func Truncated(offset int, field string) error {
	return &FormatError{Kind: KindTruncated, Offset: offset, Msg: fmt.Sprintf("short buffer reading %s", field)}
}

// BadClsid builds a KindBadClsid FormatError.
func BadClsid(offset int, msg string) error {
	return &FormatError{Kind: KindBadClsid, Offset: offset, Msg: msg}
}

// BadItemSize builds a KindBadItemSize FormatError.
func BadItemSize(offset int, size uint16) error {
	return &FormatError{Kind: KindBadItemSize, Offset: offset, Msg: fmt.Sprintf("item size %d is less than 2", size)}
}

// BadFlags builds a KindBadFlags FormatError.
func BadFlags(offset int, msg string) error {
	return &FormatError{Kind: KindBadFlags, Offset: offset, Msg: msg}
}

// InconsistentOffset builds a KindInconsistentOffset FormatError.
func InconsistentOffset(offset int, msg string) error {
	return &FormatError{Kind: KindInconsistentOffset, Offset: offset, Msg: msg}
}

// BadEncoding builds a KindBadEncoding FormatError.
func BadEncoding(offset int, msg string) error {
	return &FormatError{Kind: KindBadEncoding, Offset: offset, Msg: msg}
}

// TooLarge builds a KindTooLarge FormatError. Serialization errors have no
// meaningful input offset, so offset is conventionally -1.
func TooLarge(msg string) error {
	return &FormatError{Kind: KindTooLarge, Offset: -1, Msg: msg}
}
