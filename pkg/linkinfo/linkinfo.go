// Package linkinfo implements LinkInfo: a self-describing block whose
// internal offset table selects among an optional VolumeID, local base
// path, CommonNetworkRelativeLink, and common path suffix — each of the
// last three optionally mirrored in a two-byte-character form.
//
// Every offset in the wire format is relative to the start of the
// LinkInfo record and self-referential: the record's own header size and
// the lengths of preceding payloads determine where later payloads land.
// Serialize therefore runs in two passes — encode each payload into an
// independent buffer, then compute offsets as a running sum — rather than
// attempting a single forward pass.
package linkinfo

import (
	"github.com/captain-woof/lnk-manipulator/pkg/codec"
	"github.com/captain-woof/lnk-manipulator/pkg/consts"
	"github.com/captain-woof/lnk-manipulator/pkg/lnkerr"
)

// DriveType enumerates VolumeID.DriveType.
type DriveType uint32

const (
	DriveUnknown DriveType = iota
	DriveNoRootDir
	DriveRemovable
	DriveFixed
	DriveRemote
	DriveCDROM
	DriveRAMDisk
)

// VolumeID describes a local volume: drive type, serial number, and label
// in both single-byte and (optionally) two-byte form.
type VolumeID struct {
	DriveType         DriveType
	DriveSerialNumber uint32
	VolumeLabel       string
	VolumeLabelWide   string // empty when no Unicode label was present
}

func (v *VolumeID) hasUnicodeLabel() bool { return v.VolumeLabelWide != "" }

func (v *VolumeID) encode() []byte {
	out := make([]byte, 0, 20+len(v.VolumeLabel)+1)
	out = codec.WriteU32LE(out, 0) // size, patched below
	out = codec.WriteU32LE(out, uint32(v.DriveType))
	out = codec.WriteU32LE(out, v.DriveSerialNumber)

	if v.hasUnicodeLabel() {
		out = codec.WriteU32LE(out, consts.VolumeIDOffsetUnicode)
		out = codec.WriteU32LE(out, 0) // volume_label_offset_unicode, patched below
		out = append(out, codec.WriteCStr(v.VolumeLabel, codec.Narrow)...)
		wideOff := len(out)
		out = append(out, codec.WriteCStr(v.VolumeLabelWide, codec.Wide)...)
		putU32(out, 16, uint32(wideOff))
	} else {
		out = codec.WriteU32LE(out, 0x10)
		out = append(out, codec.WriteCStr(v.VolumeLabel, codec.Narrow)...)
	}

	putU32(out, 0, uint32(len(out)))
	return out
}

// putU32 overwrites 4 bytes in-place at off with the little-endian encoding
// of v, used when a field's value (an offset or size) is only known after
// the bytes that follow it have already been appended.
func putU32(buf []byte, off int, v uint32) {
	b := codec.WriteU32LE(nil, v)
	copy(buf[off:off+4], b)
}

func decodeVolumeID(buf []byte) (*VolumeID, error) {
	size, err := codec.ReadU32LE(buf, 0)
	if err != nil {
		return nil, err
	}
	if int(size) > len(buf) {
		return nil, lnkerr.Truncated(0, "VolumeID")
	}
	buf = buf[:size]

	driveType, err := codec.ReadU32LE(buf, 4)
	if err != nil {
		return nil, err
	}
	serial, err := codec.ReadU32LE(buf, 8)
	if err != nil {
		return nil, err
	}
	labelOffset, err := codec.ReadU32LE(buf, 12)
	if err != nil {
		return nil, err
	}

	v := &VolumeID{DriveType: DriveType(driveType), DriveSerialNumber: serial}

	if labelOffset == consts.VolumeIDOffsetUnicode {
		wideOffset, err := codec.ReadU32LE(buf, 16)
		if err != nil {
			return nil, err
		}
		label, _, err := codec.ReadCStr(buf, int(labelOffset), codec.Narrow, -1)
		if err != nil {
			return nil, err
		}
		wide, _, err := codec.ReadCStr(buf, int(wideOffset), codec.Wide, -1)
		if err != nil {
			return nil, err
		}
		v.VolumeLabel = label
		v.VolumeLabelWide = wide
	} else {
		label, _, err := codec.ReadCStr(buf, int(labelOffset), codec.Narrow, -1)
		if err != nil {
			return nil, err
		}
		v.VolumeLabel = label
	}

	return v, nil
}

// NetworkProviderType enumerates CommonNetworkRelativeLink.NetworkProviderType.
type NetworkProviderType uint32

// CommonNetworkRelativeLink describes a UNC-style network share and an
// optional device mapping.
type CommonNetworkRelativeLink struct {
	ValidDevice         bool
	ValidNetType        bool
	NetworkProviderType NetworkProviderType
	NetName             string
	DeviceName          string // only meaningful when ValidDevice
	NetNameWide         string // empty when no Unicode tail present
	DeviceNameWide      string
}

func (c *CommonNetworkRelativeLink) hasUnicodeTail() bool { return c.NetNameWide != "" }

func (c *CommonNetworkRelativeLink) flags() uint32 {
	var f uint32
	if c.ValidDevice {
		f |= 1 << 0
	}
	if c.ValidNetType {
		f |= 1 << 1
	}
	return f
}

func (c *CommonNetworkRelativeLink) encode() []byte {
	headerLen := 20
	if c.hasUnicodeTail() {
		headerLen = 28
	}

	out := make([]byte, headerLen)
	putU32(out, 4, c.flags())
	if c.ValidNetType {
		putU32(out, 16, uint32(c.NetworkProviderType))
	}

	netNameOffset := len(out)
	out = append(out, codec.WriteCStr(c.NetName, codec.Narrow)...)
	putU32(out, 8, uint32(netNameOffset))

	var deviceNameOffset int
	if c.ValidDevice {
		deviceNameOffset = len(out)
		out = append(out, codec.WriteCStr(c.DeviceName, codec.Narrow)...)
	}
	putU32(out, 12, uint32(deviceNameOffset))

	if c.hasUnicodeTail() {
		netNameWideOffset := len(out)
		out = append(out, codec.WriteCStr(c.NetNameWide, codec.Wide)...)
		putU32(out, 20, uint32(netNameWideOffset))

		var deviceNameWideOffset int
		if c.ValidDevice {
			deviceNameWideOffset = len(out)
			out = append(out, codec.WriteCStr(c.DeviceNameWide, codec.Wide)...)
		}
		putU32(out, 24, uint32(deviceNameWideOffset))
	}

	putU32(out, 0, uint32(len(out)))
	return out
}

func decodeCommonNetworkRelativeLink(buf []byte) (*CommonNetworkRelativeLink, error) {
	size, err := codec.ReadU32LE(buf, 0)
	if err != nil {
		return nil, err
	}
	if int(size) > len(buf) {
		return nil, lnkerr.Truncated(0, "CommonNetworkRelativeLink")
	}
	buf = buf[:size]

	flags, err := codec.ReadU32LE(buf, 4)
	if err != nil {
		return nil, err
	}
	netNameOffset, err := codec.ReadU32LE(buf, 8)
	if err != nil {
		return nil, err
	}
	deviceNameOffset, err := codec.ReadU32LE(buf, 12)
	if err != nil {
		return nil, err
	}
	providerType, err := codec.ReadU32LE(buf, 16)
	if err != nil {
		return nil, err
	}

	c := &CommonNetworkRelativeLink{
		ValidDevice:         flags&(1<<0) != 0,
		ValidNetType:        flags&(1<<1) != 0,
		NetworkProviderType: NetworkProviderType(providerType),
	}

	hasUnicode := netNameOffset > consts.CNRLNetNameOffsetUnicode
	if hasUnicode {
		netNameWideOffset, err := codec.ReadU32LE(buf, 20)
		if err != nil {
			return nil, err
		}
		deviceNameWideOffset, err := codec.ReadU32LE(buf, 24)
		if err != nil {
			return nil, err
		}
		netNameWide, _, err := codec.ReadCStr(buf, int(netNameWideOffset), codec.Wide, -1)
		if err != nil {
			return nil, err
		}
		c.NetNameWide = netNameWide
		if c.ValidDevice {
			deviceNameWide, _, err := codec.ReadCStr(buf, int(deviceNameWideOffset), codec.Wide, -1)
			if err != nil {
				return nil, err
			}
			c.DeviceNameWide = deviceNameWide
		}
	}

	netName, _, err := codec.ReadCStr(buf, int(netNameOffset), codec.Narrow, -1)
	if err != nil {
		return nil, err
	}
	c.NetName = netName
	if c.ValidDevice {
		deviceName, _, err := codec.ReadCStr(buf, int(deviceNameOffset), codec.Narrow, -1)
		if err != nil {
			return nil, err
		}
		c.DeviceName = deviceName
	}

	return c, nil
}

// LinkInfo is the self-describing block selecting among an optional
// VolumeID+LocalBasePath pair and an optional CommonNetworkRelativeLink+
// CommonPathSuffix pair.
type LinkInfo struct {
	VolumeID             *VolumeID
	LocalBasePath        string
	LocalBasePathWide    string
	CNRL                 *CommonNetworkRelativeLink
	CommonPathSuffix     string
	CommonPathSuffixWide string
}

func (l *LinkInfo) flags() uint32 {
	var f uint32
	if l.VolumeID != nil {
		f |= 1 << 0
	}
	if l.CNRL != nil {
		f |= 1 << 1
	}
	return f
}

func (l *LinkInfo) hasUnicodeOffsets() bool {
	return l.LocalBasePathWide != "" || l.CommonPathSuffixWide != ""
}

// Parse decodes a LinkInfo record starting at off. It returns the record
// and the number of bytes consumed, equal to the record's own
// link_info_size field.
func Parse(buf []byte, off int) (*LinkInfo, int, error) {
	size, err := codec.ReadU32LE(buf, off)
	if err != nil {
		return nil, 0, err
	}
	if off+int(size) > len(buf) {
		return nil, 0, lnkerr.Truncated(off, "LinkInfo")
	}
	rec := buf[off : off+int(size)]

	headerSize, err := codec.ReadU32LE(rec, 4)
	if err != nil {
		return nil, 0, err
	}
	flags, err := codec.ReadU32LE(rec, 8)
	if err != nil {
		return nil, 0, err
	}
	if flags > 3 {
		return nil, 0, lnkerr.BadFlags(off+8, "link_info_flags out of range")
	}

	volumeIDOffset, err := codec.ReadU32LE(rec, 12)
	if err != nil {
		return nil, 0, err
	}
	localBasePathOffset, err := codec.ReadU32LE(rec, 16)
	if err != nil {
		return nil, 0, err
	}
	cnrlOffset, err := codec.ReadU32LE(rec, 20)
	if err != nil {
		return nil, 0, err
	}
	commonPathSuffixOffset, err := codec.ReadU32LE(rec, 24)
	if err != nil {
		return nil, 0, err
	}

	var localBasePathOffsetWide, commonPathSuffixOffsetWide uint32
	if headerSize >= consts.LinkInfoHeaderSize2 {
		localBasePathOffsetWide, err = codec.ReadU32LE(rec, 28)
		if err != nil {
			return nil, 0, err
		}
		commonPathSuffixOffsetWide, err = codec.ReadU32LE(rec, 32)
		if err != nil {
			return nil, 0, err
		}
	}

	info := &LinkInfo{}

	volumeIDPresent := flags&1 != 0
	if volumeIDPresent {
		if volumeIDOffset == 0 {
			return nil, 0, lnkerr.InconsistentOffset(off+12, "volume_id_offset is zero but VolumeID flag is set")
		}
		if int(volumeIDOffset) < int(headerSize) || int(volumeIDOffset) >= len(rec) {
			return nil, 0, lnkerr.InconsistentOffset(off+12, "volume_id_offset outside LinkInfo")
		}
		vol, err := decodeVolumeID(rec[volumeIDOffset:])
		if err != nil {
			return nil, 0, err
		}
		info.VolumeID = vol

		path, _, err := codec.ReadCStr(rec, int(localBasePathOffset), codec.Narrow, -1)
		if err != nil {
			return nil, 0, err
		}
		info.LocalBasePath = path
		if localBasePathOffsetWide != 0 {
			wide, _, err := codec.ReadCStr(rec, int(localBasePathOffsetWide), codec.Wide, -1)
			if err != nil {
				return nil, 0, err
			}
			info.LocalBasePathWide = wide
		}
	}

	cnrlPresent := flags&2 != 0
	if cnrlPresent {
		if int(cnrlOffset) < int(headerSize) || int(cnrlOffset) >= len(rec) {
			return nil, 0, lnkerr.InconsistentOffset(off+20, "common_network_relative_link_offset outside LinkInfo")
		}
		cnrl, err := decodeCommonNetworkRelativeLink(rec[cnrlOffset:])
		if err != nil {
			return nil, 0, err
		}
		info.CNRL = cnrl

		suffix, _, err := codec.ReadCStr(rec, int(commonPathSuffixOffset), codec.Narrow, -1)
		if err != nil {
			return nil, 0, err
		}
		info.CommonPathSuffix = suffix
		if commonPathSuffixOffsetWide != 0 {
			wide, _, err := codec.ReadCStr(rec, int(commonPathSuffixOffsetWide), codec.Wide, -1)
			if err != nil {
				return nil, 0, err
			}
			info.CommonPathSuffixWide = wide
		}
	}

	return info, int(size), nil
}

// Serialize encodes the LinkInfo record using the two-pass algorithm: every
// present payload is built independently, then offsets are computed as a
// running sum over the header length and the preceding present payloads,
// in canonical order (VolumeID, LocalBasePath, CNRL, CommonPathSuffix,
// LocalBasePathWide, CommonPathSuffixWide).
func (l *LinkInfo) Serialize() ([]byte, error) {
	var volumeIDBytes, localBasePathBytes, cnrlBytes, commonPathSuffixBytes []byte
	var localBasePathWideBytes, commonPathSuffixWideBytes []byte

	if l.VolumeID != nil {
		volumeIDBytes = l.VolumeID.encode()
		localBasePathBytes = codec.WriteCStr(l.LocalBasePath, codec.Narrow)
		if l.LocalBasePathWide != "" {
			localBasePathWideBytes = codec.WriteCStr(l.LocalBasePathWide, codec.Wide)
		}
	}
	if l.CNRL != nil {
		cnrlBytes = l.CNRL.encode()
		commonPathSuffixBytes = codec.WriteCStr(l.CommonPathSuffix, codec.Narrow)
		if l.CommonPathSuffixWide != "" {
			commonPathSuffixWideBytes = codec.WriteCStr(l.CommonPathSuffixWide, codec.Wide)
		}
	}

	headerSize := consts.LinkInfoHeaderSize1
	if l.hasUnicodeOffsets() {
		headerSize = consts.LinkInfoHeaderSize2
	}

	running := int(headerSize)
	var volumeIDOffset, localBasePathOffset, cnrlOffset, commonPathSuffixOffset uint32
	var localBasePathOffsetWide, commonPathSuffixOffsetWide uint32

	if l.VolumeID != nil {
		volumeIDOffset = uint32(running)
		running += len(volumeIDBytes)
		localBasePathOffset = uint32(running)
		running += len(localBasePathBytes)
	}
	if l.CNRL != nil {
		cnrlOffset = uint32(running)
		running += len(cnrlBytes)
		commonPathSuffixOffset = uint32(running)
		running += len(commonPathSuffixBytes)
	}
	if len(localBasePathWideBytes) > 0 {
		localBasePathOffsetWide = uint32(running)
		running += len(localBasePathWideBytes)
	}
	if len(commonPathSuffixWideBytes) > 0 {
		commonPathSuffixOffsetWide = uint32(running)
		running += len(commonPathSuffixWideBytes)
	}

	total := running
	if total > 0xFFFFFFFF {
		return nil, lnkerr.TooLarge("LinkInfo exceeds 32-bit size field")
	}

	out := make([]byte, 0, total)
	out = codec.WriteU32LE(out, uint32(total))
	out = codec.WriteU32LE(out, headerSize)
	out = codec.WriteU32LE(out, l.flags())
	out = codec.WriteU32LE(out, volumeIDOffset)
	out = codec.WriteU32LE(out, localBasePathOffset)
	out = codec.WriteU32LE(out, cnrlOffset)
	out = codec.WriteU32LE(out, commonPathSuffixOffset)
	if headerSize == consts.LinkInfoHeaderSize2 {
		out = codec.WriteU32LE(out, localBasePathOffsetWide)
		out = codec.WriteU32LE(out, commonPathSuffixOffsetWide)
	}

	out = append(out, volumeIDBytes...)
	out = append(out, localBasePathBytes...)
	out = append(out, cnrlBytes...)
	out = append(out, commonPathSuffixBytes...)
	out = append(out, localBasePathWideBytes...)
	out = append(out, commonPathSuffixWideBytes...)

	return out, nil
}
