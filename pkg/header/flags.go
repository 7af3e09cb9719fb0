package header

// LinkFlags is the header's 32-bit presence/behavior bit-field (MS-SHLLINK
// ShellLinkHeader.LinkFlags). Bit 0 is the low-order bit of the field's
// first serialized byte; bits 11 and 16 are reserved and must round-trip as
// zero. Rather than exposing one bool field per bit, LinkFlags stays an
// integer and hands out named accessors — see the Design Notes in
// DESIGN.md for why.
type LinkFlags uint32

// Bit positions of every named LinkFlags field.
const (
	BitHasLinkTargetIDList = iota
	BitHasLinkInfo
	BitHasName
	BitHasRelativePath
	BitHasWorkingDir
	BitHasArguments
	BitHasIconLocation
	BitIsUnicode
	BitForceNoLinkInfo
	BitHasExpString
	BitRunInSeparateProcess
	bitLinkFlagsReserved1 // reserved, must be zero
	BitHasDarwinID
	BitRunAsUser
	BitHasExpIcon
	BitNoPidlAlias
	bitLinkFlagsReserved2 // reserved, must be zero
	BitRunWithShimLayer
	BitForceNoLinkTrack
	BitEnableTargetMetadata
	BitDisableLinkPathTracking
	BitDisableKnownFolderTracking
	BitDisableKnownFolderAlias
	BitAllowLinkToLink
	BitUnaliasOnSave
	BitPreferEnvironmentPath
	BitKeepLocalIDListForUNCTarget
)

func (f LinkFlags) bit(pos int) bool      { return f&(1<<uint(pos)) != 0 }
func (f *LinkFlags) setBit(pos int, v bool) {
	if v {
		*f |= 1 << uint(pos)
	} else {
		*f &^= 1 << uint(pos)
	}
}

// reservedLinkFlagsMask covers bits 11 and 16, which MS-SHLLINK reserves:
// ignored on read, must round-trip as zero on write.
const reservedLinkFlagsMask = 1<<uint(bitLinkFlagsReserved1) | 1<<uint(bitLinkFlagsReserved2)

// clearReserved zeroes the reserved bits before the field is written out.
func (f LinkFlags) clearReserved() LinkFlags { return f &^ reservedLinkFlagsMask }

// HasLinkTargetIDList reports whether an IdList follows the header.
func (f LinkFlags) HasLinkTargetIDList() bool { return f.bit(BitHasLinkTargetIDList) }

// SetHasLinkTargetIDList sets or clears the bit.
func (f *LinkFlags) SetHasLinkTargetIDList(v bool) { f.setBit(BitHasLinkTargetIDList, v) }

// HasLinkInfo reports whether a LinkInfo block follows.
func (f LinkFlags) HasLinkInfo() bool { return f.bit(BitHasLinkInfo) }

// SetHasLinkInfo sets or clears the bit.
func (f *LinkFlags) SetHasLinkInfo(v bool) { f.setBit(BitHasLinkInfo, v) }

// HasName reports whether StringData carries a display name.
func (f LinkFlags) HasName() bool { return f.bit(BitHasName) }

// SetHasName sets or clears the bit.
func (f *LinkFlags) SetHasName(v bool) { f.setBit(BitHasName, v) }

// HasRelativePath reports whether StringData carries a relative path.
func (f LinkFlags) HasRelativePath() bool { return f.bit(BitHasRelativePath) }

// SetHasRelativePath sets or clears the bit.
func (f *LinkFlags) SetHasRelativePath(v bool) { f.setBit(BitHasRelativePath, v) }

// HasWorkingDir reports whether StringData carries a working directory.
func (f LinkFlags) HasWorkingDir() bool { return f.bit(BitHasWorkingDir) }

// SetHasWorkingDir sets or clears the bit.
func (f *LinkFlags) SetHasWorkingDir(v bool) { f.setBit(BitHasWorkingDir, v) }

// HasArguments reports whether StringData carries command-line arguments.
func (f LinkFlags) HasArguments() bool { return f.bit(BitHasArguments) }

// SetHasArguments sets or clears the bit.
func (f *LinkFlags) SetHasArguments(v bool) { f.setBit(BitHasArguments, v) }

// HasIconLocation reports whether StringData carries an icon location.
func (f LinkFlags) HasIconLocation() bool { return f.bit(BitHasIconLocation) }

// SetHasIconLocation sets or clears the bit.
func (f *LinkFlags) SetHasIconLocation(v bool) { f.setBit(BitHasIconLocation, v) }

// IsUnicode reports whether StringData strings are encoded two-byte wide.
func (f LinkFlags) IsUnicode() bool { return f.bit(BitIsUnicode) }

// SetIsUnicode sets or clears the bit.
func (f *LinkFlags) SetIsUnicode(v bool) { f.setBit(BitIsUnicode, v) }

// ForceNoLinkInfo reports whether LinkInfo must not be created even though
// HasLinkInfo would otherwise be implied.
func (f LinkFlags) ForceNoLinkInfo() bool { return f.bit(BitForceNoLinkInfo) }

// SetForceNoLinkInfo sets or clears the bit.
func (f *LinkFlags) SetForceNoLinkInfo(v bool) { f.setBit(BitForceNoLinkInfo, v) }

// HasExpString reports whether the ExtraData contains an
// EnvironmentVariableDataBlock.
func (f LinkFlags) HasExpString() bool { return f.bit(BitHasExpString) }

// SetHasExpString sets or clears the bit.
func (f *LinkFlags) SetHasExpString(v bool) { f.setBit(BitHasExpString, v) }

// RunInSeparateProcess reports whether the target runs in a separate VM (16-bit targets only).
func (f LinkFlags) RunInSeparateProcess() bool { return f.bit(BitRunInSeparateProcess) }

// SetRunInSeparateProcess sets or clears the bit.
func (f *LinkFlags) SetRunInSeparateProcess(v bool) { f.setBit(BitRunInSeparateProcess, v) }

// HasDarwinID reports whether the ExtraData contains a DarwinDataBlock.
func (f LinkFlags) HasDarwinID() bool { return f.bit(BitHasDarwinID) }

// SetHasDarwinID sets or clears the bit.
func (f *LinkFlags) SetHasDarwinID(v bool) { f.setBit(BitHasDarwinID, v) }

// RunAsUser reports whether the target is run as a different user.
func (f LinkFlags) RunAsUser() bool { return f.bit(BitRunAsUser) }

// SetRunAsUser sets or clears the bit.
func (f *LinkFlags) SetRunAsUser(v bool) { f.setBit(BitRunAsUser, v) }

// HasExpIcon reports whether the ExtraData contains an
// IconEnvironmentDataBlock.
func (f LinkFlags) HasExpIcon() bool { return f.bit(BitHasExpIcon) }

// SetHasExpIcon sets or clears the bit.
func (f *LinkFlags) SetHasExpIcon(v bool) { f.setBit(BitHasExpIcon, v) }

// NoPidlAlias reports whether the target's IDList should not be stored as
// an alias.
func (f LinkFlags) NoPidlAlias() bool { return f.bit(BitNoPidlAlias) }

// SetNoPidlAlias sets or clears the bit.
func (f *LinkFlags) SetNoPidlAlias(v bool) { f.setBit(BitNoPidlAlias, v) }

// RunWithShimLayer reports whether an application compatibility shim is applied.
func (f LinkFlags) RunWithShimLayer() bool { return f.bit(BitRunWithShimLayer) }

// SetRunWithShimLayer sets or clears the bit.
func (f *LinkFlags) SetRunWithShimLayer(v bool) { f.setBit(BitRunWithShimLayer, v) }

// ForceNoLinkTrack reports whether distributed link tracking is disabled.
func (f LinkFlags) ForceNoLinkTrack() bool { return f.bit(BitForceNoLinkTrack) }

// SetForceNoLinkTrack sets or clears the bit.
func (f *LinkFlags) SetForceNoLinkTrack(v bool) { f.setBit(BitForceNoLinkTrack, v) }

// EnableTargetMetadata reports whether extra target metadata is collected.
func (f LinkFlags) EnableTargetMetadata() bool { return f.bit(BitEnableTargetMetadata) }

// SetEnableTargetMetadata sets or clears the bit.
func (f *LinkFlags) SetEnableTargetMetadata(v bool) { f.setBit(BitEnableTargetMetadata, v) }

// DisableLinkPathTracking reports whether the SID_DESC_FLAG for link-path
// tracking is suppressed.
func (f LinkFlags) DisableLinkPathTracking() bool { return f.bit(BitDisableLinkPathTracking) }

// SetDisableLinkPathTracking sets or clears the bit.
func (f *LinkFlags) SetDisableLinkPathTracking(v bool) { f.setBit(BitDisableLinkPathTracking, v) }

// DisableKnownFolderTracking reports whether known-folder tracking is disabled.
func (f LinkFlags) DisableKnownFolderTracking() bool { return f.bit(BitDisableKnownFolderTracking) }

// SetDisableKnownFolderTracking sets or clears the bit.
func (f *LinkFlags) SetDisableKnownFolderTracking(v bool) {
	f.setBit(BitDisableKnownFolderTracking, v)
}

// DisableKnownFolderAlias reports whether known-folder ID aliasing is disabled.
func (f LinkFlags) DisableKnownFolderAlias() bool { return f.bit(BitDisableKnownFolderAlias) }

// SetDisableKnownFolderAlias sets or clears the bit.
func (f *LinkFlags) SetDisableKnownFolderAlias(v bool) { f.setBit(BitDisableKnownFolderAlias, v) }

// AllowLinkToLink reports whether this link is allowed to target another link.
func (f LinkFlags) AllowLinkToLink() bool { return f.bit(BitAllowLinkToLink) }

// SetAllowLinkToLink sets or clears the bit.
func (f *LinkFlags) SetAllowLinkToLink(v bool) { f.setBit(BitAllowLinkToLink, v) }

// UnaliasOnSave reports whether a known-folder alias is unaliased on save.
func (f LinkFlags) UnaliasOnSave() bool { return f.bit(BitUnaliasOnSave) }

// SetUnaliasOnSave sets or clears the bit.
func (f *LinkFlags) SetUnaliasOnSave(v bool) { f.setBit(BitUnaliasOnSave, v) }

// PreferEnvironmentPath reports whether an environment-variable path is
// preferred over the literal path during resolution.
func (f LinkFlags) PreferEnvironmentPath() bool { return f.bit(BitPreferEnvironmentPath) }

// SetPreferEnvironmentPath sets or clears the bit.
func (f *LinkFlags) SetPreferEnvironmentPath(v bool) { f.setBit(BitPreferEnvironmentPath, v) }

// KeepLocalIDListForUNCTarget reports whether the local IDList is kept even
// when the target is a UNC path.
func (f LinkFlags) KeepLocalIDListForUNCTarget() bool {
	return f.bit(BitKeepLocalIDListForUNCTarget)
}

// SetKeepLocalIDListForUNCTarget sets or clears the bit.
func (f *LinkFlags) SetKeepLocalIDListForUNCTarget(v bool) {
	f.setBit(BitKeepLocalIDListForUNCTarget, v)
}

// FileAttributes is the header's 32-bit mirror of the target file's
// attributes (MS-SHLLINK ShellLinkHeader.FileAttributes). 13 bits are
// named; the rest, including bits 3 and 6, are reserved and must be zero.
type FileAttributes uint32

// Bit positions of every named FileAttributes field.
const (
	BitReadOnly = iota
	BitHidden
	BitSystem
	bitFileAttrReserved1 // reserved, must be zero
	BitDirectory
	BitArchive
	bitFileAttrReserved2 // reserved, must be zero
	BitNormal
	BitTemporary
	BitSparseFile
	BitReparsePoint
	BitCompressed
	BitOffline
	BitNotContentIndexed
	BitEncrypted
)

func (a FileAttributes) bit(pos int) bool { return a&(1<<uint(pos)) != 0 }
func (a *FileAttributes) setBit(pos int, v bool) {
	if v {
		*a |= 1 << uint(pos)
	} else {
		*a &^= 1 << uint(pos)
	}
}

// reservedFileAttrMask covers bits 3 and 6, reserved the same way
// LinkFlags' reserved bits are.
const reservedFileAttrMask = 1<<uint(bitFileAttrReserved1) | 1<<uint(bitFileAttrReserved2)

// clearReserved zeroes the reserved bits before the field is written out.
func (a FileAttributes) clearReserved() FileAttributes { return a &^ reservedFileAttrMask }

// ReadOnly reports the FILE_ATTRIBUTE_READONLY bit.
func (a FileAttributes) ReadOnly() bool { return a.bit(BitReadOnly) }

// SetReadOnly sets or clears the bit.
func (a *FileAttributes) SetReadOnly(v bool) { a.setBit(BitReadOnly, v) }

// Hidden reports the FILE_ATTRIBUTE_HIDDEN bit.
func (a FileAttributes) Hidden() bool { return a.bit(BitHidden) }

// SetHidden sets or clears the bit.
func (a *FileAttributes) SetHidden(v bool) { a.setBit(BitHidden, v) }

// System reports the FILE_ATTRIBUTE_SYSTEM bit.
func (a FileAttributes) System() bool { return a.bit(BitSystem) }

// SetSystem sets or clears the bit.
func (a *FileAttributes) SetSystem(v bool) { a.setBit(BitSystem, v) }

// Directory reports the FILE_ATTRIBUTE_DIRECTORY bit.
func (a FileAttributes) Directory() bool { return a.bit(BitDirectory) }

// SetDirectory sets or clears the bit.
func (a *FileAttributes) SetDirectory(v bool) { a.setBit(BitDirectory, v) }

// Archive reports the FILE_ATTRIBUTE_ARCHIVE bit.
func (a FileAttributes) Archive() bool { return a.bit(BitArchive) }

// SetArchive sets or clears the bit.
func (a *FileAttributes) SetArchive(v bool) { a.setBit(BitArchive, v) }

// Normal reports the FILE_ATTRIBUTE_NORMAL bit. If set, every other
// attribute bit must be clear (see ValidNormal).
func (a FileAttributes) Normal() bool { return a.bit(BitNormal) }

// SetNormal sets or clears the bit.
func (a *FileAttributes) SetNormal(v bool) { a.setBit(BitNormal, v) }

// Temporary reports the FILE_ATTRIBUTE_TEMPORARY bit.
func (a FileAttributes) Temporary() bool { return a.bit(BitTemporary) }

// SetTemporary sets or clears the bit.
func (a *FileAttributes) SetTemporary(v bool) { a.setBit(BitTemporary, v) }

// SparseFile reports the FILE_ATTRIBUTE_SPARSE_FILE bit.
func (a FileAttributes) SparseFile() bool { return a.bit(BitSparseFile) }

// SetSparseFile sets or clears the bit.
func (a *FileAttributes) SetSparseFile(v bool) { a.setBit(BitSparseFile, v) }

// ReparsePoint reports the FILE_ATTRIBUTE_REPARSE_POINT bit.
func (a FileAttributes) ReparsePoint() bool { return a.bit(BitReparsePoint) }

// SetReparsePoint sets or clears the bit.
func (a *FileAttributes) SetReparsePoint(v bool) { a.setBit(BitReparsePoint, v) }

// Compressed reports the FILE_ATTRIBUTE_COMPRESSED bit.
func (a FileAttributes) Compressed() bool { return a.bit(BitCompressed) }

// SetCompressed sets or clears the bit.
func (a *FileAttributes) SetCompressed(v bool) { a.setBit(BitCompressed, v) }

// Offline reports the FILE_ATTRIBUTE_OFFLINE bit.
func (a FileAttributes) Offline() bool { return a.bit(BitOffline) }

// SetOffline sets or clears the bit.
func (a *FileAttributes) SetOffline(v bool) { a.setBit(BitOffline, v) }

// NotContentIndexed reports the FILE_ATTRIBUTE_NOT_CONTENT_INDEXED bit.
func (a FileAttributes) NotContentIndexed() bool { return a.bit(BitNotContentIndexed) }

// SetNotContentIndexed sets or clears the bit.
func (a *FileAttributes) SetNotContentIndexed(v bool) { a.setBit(BitNotContentIndexed, v) }

// Encrypted reports the FILE_ATTRIBUTE_ENCRYPTED bit.
func (a FileAttributes) Encrypted() bool { return a.bit(BitEncrypted) }

// SetEncrypted sets or clears the bit.
func (a *FileAttributes) SetEncrypted(v bool) { a.setBit(BitEncrypted, v) }

// ValidNormal reports whether the Normal invariant holds: if Normal is set,
// every other attribute bit must be clear.
func (a FileAttributes) ValidNormal() bool {
	if !a.Normal() {
		return true
	}
	return a&^(1<<uint(BitNormal)) == 0
}
