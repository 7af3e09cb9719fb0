// Package lnk parses and serializes Windows Shell Link (".lnk") files: the
// ShellLinkHeader, the optional LinkTargetIDList, LinkInfo and StringData
// sections it gates, and a trailing, opaque ExtraData span.
//
// Parse and Serialize are pure functions over byte buffers. A ShellLink
// holds no file handle and performs no I/O; loading and storing bytes is
// the caller's responsibility.
package lnk

import (
	"github.com/go-logr/logr"

	"github.com/captain-woof/lnk-manipulator/pkg/consts"
	"github.com/captain-woof/lnk-manipulator/pkg/header"
	"github.com/captain-woof/lnk-manipulator/pkg/idlist"
	"github.com/captain-woof/lnk-manipulator/pkg/linkinfo"
	"github.com/captain-woof/lnk-manipulator/pkg/option"
	"github.com/captain-woof/lnk-manipulator/pkg/stringdata"
)

// ShellLink is the root record: one Header, and optionally an IDList, a
// LinkInfo, a StringData, and a trailing ExtraData span.
type ShellLink struct {
	Header     *header.ShellLinkHeader
	IDList     *idlist.IDList
	LinkInfo   *linkinfo.LinkInfo
	StringData *stringdata.StringData
	ExtraData  []byte
}

// New returns a minimal valid ShellLink: a default header and no optional
// sections.
func New() *ShellLink {
	return &ShellLink{Header: header.New()}
}

// Parse decodes a ShellLink from buf.
func Parse(buf []byte, opts ...option.Option) (*ShellLink, error) {
	o := option.Resolve(opts...)

	h, err := header.Parse(buf, o.Logger, o.LenientHeader)
	if err != nil {
		o.Logger.Error(err, "failed parsing ShellLinkHeader")
		return nil, err
	}
	sl := &ShellLink{Header: h}
	pos := consts.HeaderSize

	if h.LinkFlags.HasLinkTargetIDList() {
		list, n, err := idlist.Parse(buf, pos)
		if err != nil {
			o.Logger.Error(err, "failed parsing LinkTargetIDList", "offset", pos)
			return nil, err
		}
		sl.IDList = list
		pos += n
	}

	if h.LinkFlags.HasLinkInfo() {
		info, n, err := linkinfo.Parse(buf, pos)
		if err != nil {
			o.Logger.Error(err, "failed parsing LinkInfo", "offset", pos)
			return nil, err
		}
		sl.LinkInfo = info
		pos += n
	}

	presence := stringdata.Presence{
		Name:         h.LinkFlags.HasName(),
		RelativePath: h.LinkFlags.HasRelativePath(),
		WorkingDir:   h.LinkFlags.HasWorkingDir(),
		Arguments:    h.LinkFlags.HasArguments(),
		IconLocation: h.LinkFlags.HasIconLocation(),
	}
	if presence != (stringdata.Presence{}) {
		sd, n, err := stringdata.Parse(buf, pos, presence, h.LinkFlags.IsUnicode())
		if err != nil {
			o.Logger.Error(err, "failed parsing StringData", "offset", pos)
			return nil, err
		}
		sl.StringData = sd
		pos += n
	}

	if pos < len(buf) {
		extra := buf[pos:]
		if o.MaxExtraData > 0 && len(extra) > o.MaxExtraData {
			o.Logger.Warn("ExtraData truncated to configured limit", "size", len(extra), "limit", o.MaxExtraData)
			extra = extra[:o.MaxExtraData]
		}
		sl.ExtraData = append([]byte(nil), extra...)
	}

	o.Logger.Debug("parsed ShellLink", "bytes", len(buf), "has_id_list", sl.IDList != nil, "has_link_info", sl.LinkInfo != nil, "has_string_data", sl.StringData != nil, "extra_data_bytes", len(sl.ExtraData))
	return sl, nil
}

// Serialize encodes sl back into its byte layout.
func Serialize(sl *ShellLink, opts ...option.Option) ([]byte, error) {
	o := option.Resolve(opts...)

	sl.syncFlags()

	headerBytes, err := sl.Header.Serialize(o.WriteCLSID)
	if err != nil {
		o.Logger.Error(err, "failed serializing ShellLinkHeader")
		return nil, err
	}
	out := headerBytes

	if sl.IDList != nil {
		out = append(out, sl.IDList.Serialize()...)
	}

	if sl.LinkInfo != nil {
		infoBytes, err := sl.LinkInfo.Serialize()
		if err != nil {
			o.Logger.Error(err, "failed serializing LinkInfo")
			return nil, err
		}
		out = append(out, infoBytes...)
	}

	if sl.StringData != nil {
		out = append(out, sl.StringData.Serialize(sl.Header.LinkFlags.IsUnicode())...)
	}

	out = append(out, sl.ExtraData...)

	o.Logger.Debug("serialized ShellLink", "bytes", len(out))
	return out, nil
}

// syncFlags keeps the header's presence bits consistent with which
// optional sections are actually populated, so a caller that builds a
// ShellLink via New() and then assigns sl.IDList etc. does not also have
// to hand-toggle LinkFlags.
func (sl *ShellLink) syncFlags() {
	lf := sl.Header.LinkFlags
	lf.SetHasLinkTargetIDList(sl.IDList != nil)
	lf.SetHasLinkInfo(sl.LinkInfo != nil)
	if sl.StringData != nil {
		lf.SetHasName(sl.StringData.Name != nil)
		lf.SetHasRelativePath(sl.StringData.RelativePath != nil)
		lf.SetHasWorkingDir(sl.StringData.WorkingDir != nil)
		lf.SetHasArguments(sl.StringData.Arguments != nil)
		lf.SetHasIconLocation(sl.StringData.IconLocation != nil)
	} else {
		lf.SetHasName(false)
		lf.SetHasRelativePath(false)
		lf.SetHasWorkingDir(false)
		lf.SetHasArguments(false)
		lf.SetHasIconLocation(false)
	}
	sl.Header.LinkFlags = lf
}

// WithLogger is re-exported for callers that only need this one option and
// would rather not import pkg/option directly.
func WithLogger(log logr.Logger) option.Option { return option.WithLogger(log) }

// TargetPath joins the most specific path information LinkInfo carries —
// a local base path, or a network share's name plus the common path
// suffix — into a single display string. It never touches a filesystem
// and is never itself serialized; it is a read-only convenience over
// fields that are authoritative on their own.
func (sl *ShellLink) TargetPath() string {
	if sl.LinkInfo == nil {
		return ""
	}
	li := sl.LinkInfo
	switch {
	case li.VolumeID != nil:
		return joinPath(li.LocalBasePath, li.CommonPathSuffix)
	case li.CNRL != nil:
		return joinPath(li.CNRL.NetName, li.CommonPathSuffix)
	default:
		return ""
	}
}

func joinPath(base, suffix string) string {
	if base == "" {
		return suffix
	}
	if suffix == "" {
		return base
	}
	if base[len(base)-1] == '\\' {
		return base + suffix
	}
	return base + "\\" + suffix
}
