// Package fuzzgen builds a corpus of synthetic ShellLink records spanning
// the cross-product of LinkFlags presence bits, for use by package tests
// exercising the Parse(Serialize(x)) == x round-trip property. It is not
// imported by any non-test code.
package fuzzgen

import (
	"github.com/captain-woof/lnk-manipulator/pkg/header"
	"github.com/captain-woof/lnk-manipulator/pkg/idlist"
	"github.com/captain-woof/lnk-manipulator/pkg/linkinfo"
	"github.com/captain-woof/lnk-manipulator/pkg/stringdata"
)

// Case is one synthetic ShellLink, described at the granularity this
// package controls: which optional sections are populated, and whether
// StringData is Unicode.
type Case struct {
	Name         string
	HasIDList    bool
	HasLinkInfo  bool
	LinkInfoWide bool
	HasCNRL      bool
	StringFields stringdata.Presence
	Unicode      bool
}

// Cases returns every combination of (IDList present/absent) x (LinkInfo
// variant: absent, VolumeID-only, CNRL-only, wide-offsets) x (StringData
// fully populated or absent), in both narrow and Unicode character width.
func Cases() []Case {
	var cases []Case
	linkInfoVariants := []struct {
		name   string
		has    bool
		wide   bool
		useCNRL bool
	}{
		{"none", false, false, false},
		{"volume-id", true, false, false},
		{"cnrl", true, false, true},
		{"volume-id-wide", true, true, false},
	}
	stringVariants := []struct {
		name string
		p    stringdata.Presence
	}{
		{"no-strings", stringdata.Presence{}},
		{"all-strings", stringdata.Presence{Name: true, RelativePath: true, WorkingDir: true, Arguments: true, IconLocation: true}},
	}

	for _, hasIDList := range []bool{false, true} {
		for _, li := range linkInfoVariants {
			for _, sv := range stringVariants {
				for _, unicode := range []bool{false, true} {
					cases = append(cases, Case{
						Name:         hyphenJoin(boolName("idlist", hasIDList), li.name, sv.name, boolName("unicode", unicode)),
						HasIDList:    hasIDList,
						HasLinkInfo:  li.has,
						LinkInfoWide: li.wide,
						HasCNRL:      li.useCNRL,
						StringFields: sv.p,
						Unicode:      unicode,
					})
				}
			}
		}
	}
	return cases
}

func boolName(label string, v bool) string {
	if v {
		return label
	}
	return "no-" + label
}

func hyphenJoin(parts ...string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += "/" + p
	}
	return out
}

// Build returns a Case's header: a default header with only the IsUnicode
// bit set from the Case. BuildIDList, BuildLinkInfo and BuildStringData
// supply the optional sections. Build does not set LinkFlags presence
// bits — callers serializing through the public lnk.Serialize entry point
// get those synchronized automatically.
func Build(c Case) *header.ShellLinkHeader {
	h := header.New()
	h.LinkFlags.SetIsUnicode(c.Unicode)
	return h
}

// BuildIDList returns a two-item IDList for cases that want one.
func BuildIDList() *idlist.IDList {
	return &idlist.IDList{Items: []idlist.ItemID{
		{Payload: []byte{0xAA, 0xBB, 0xCC, 0xDD}},
		{Payload: []byte{0x01}},
	}}
}

// BuildLinkInfo returns a LinkInfo for the given case, or nil when the
// case has none.
func BuildLinkInfo(c Case) *linkinfo.LinkInfo {
	if !c.HasLinkInfo {
		return nil
	}
	li := &linkinfo.LinkInfo{}
	if c.HasCNRL {
		li.CNRL = &linkinfo.CommonNetworkRelativeLink{
			ValidNetType:        true,
			NetworkProviderType: 0x00020000,
			NetName:             `\\server\share`,
		}
		li.CommonPathSuffix = `dir\file.txt`
		if c.LinkInfoWide {
			li.CNRL.NetNameWide = `\\server\share`
		}
		return li
	}
	li.VolumeID = &linkinfo.VolumeID{
		DriveType:         linkinfo.DriveFixed,
		DriveSerialNumber: 0x12345678,
		VolumeLabel:       "OSDisk",
	}
	li.LocalBasePath = `C:\Program Files\App\app.exe`
	if c.LinkInfoWide {
		li.VolumeID.VolumeLabelWide = "OSDisk"
		li.LocalBasePathWide = `C:\Program Files\App\app.exe`
	}
	return li
}

// BuildStringData returns a StringData populated per c.StringFields, or
// nil when none are set.
func BuildStringData(c Case) *stringdata.StringData {
	if c.StringFields == (stringdata.Presence{}) {
		return nil
	}
	str := func(s string) *string { return &s }
	sd := &stringdata.StringData{}
	if c.StringFields.Name {
		sd.Name = str("My Shortcut")
	}
	if c.StringFields.RelativePath {
		sd.RelativePath = str(`.\app.exe`)
	}
	if c.StringFields.WorkingDir {
		sd.WorkingDir = str(`C:\Program Files\App`)
	}
	if c.StringFields.Arguments {
		sd.Arguments = str("--flag value")
	}
	if c.StringFields.IconLocation {
		sd.IconLocation = str(`C:\Program Files\App\app.exe`)
	}
	return sd
}
