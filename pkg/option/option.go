// Package option provides the functional options accepted by lnk.Parse and
// lnk.Serialize.
package option

import (
	"github.com/go-logr/logr"

	"github.com/captain-woof/lnk-manipulator/pkg/consts"
	"github.com/captain-woof/lnk-manipulator/pkg/logging"
)

// Options holds the resolved configuration for a Parse or Serialize call.
type Options struct {
	// Logger receives Trace-level field decisions and Warn/Error level
	// diagnostics from the codec.
	Logger *logging.Logger
	// LenientHeader controls whether a ShellLinkHeader.HeaderSize mismatch
	// or unrecognized CLSID is logged as a warning (true, the default) or
	// returned as a BadClsid error (false).
	LenientHeader bool
	// WriteCLSID is the class identifier Serialize stamps into the header.
	WriteCLSID [consts.ClsidSize]byte
	// MaxExtraData caps the number of trailing ExtraData bytes Parse will
	// retain; zero means unlimited.
	MaxExtraData int
}

// Option mutates an Options value.
type Option func(*Options)

// Default returns the baseline Options: a discarding logger, lenient header
// validation, the legacy CLSID (...0000000F, the default writers in the
// wild converge on), and an unbounded ExtraData span.
func Default() *Options {
	return &Options{
		Logger:        logging.DefaultLogger(),
		LenientHeader: true,
		WriteCLSID:    consts.ClsidLegacy,
		MaxExtraData:  0,
	}
}

// Resolve applies opts over Default() and returns the result.
func Resolve(opts ...Option) *Options {
	o := Default()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger routes codec diagnostics through log.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) {
		o.Logger = logging.NewLogger(log)
	}
}

// WithLenientHeader sets whether a malformed header signature is tolerated
// (logged) rather than rejected.
func WithLenientHeader(lenient bool) Option {
	return func(o *Options) {
		o.LenientHeader = lenient
	}
}

// WithCLSID overrides the class identifier Serialize writes. clsid must be
// one of consts.ClsidModern or consts.ClsidLegacy; Serialize rejects any
// other value with a BadClsid error.
func WithCLSID(clsid [consts.ClsidSize]byte) Option {
	return func(o *Options) {
		o.WriteCLSID = clsid
	}
}

// WithMaxExtraData caps the number of trailing ExtraData bytes retained by
// Parse. A limit of 0 means unlimited.
func WithMaxExtraData(n int) Option {
	return func(o *Options) {
		o.MaxExtraData = n
	}
}
