package header

import (
	"fmt"
	"strings"
)

// HotKeyModifier is the bitmask carried in the hotkey's high byte.
type HotKeyModifier byte

const (
	ModShift HotKeyModifier = 1 << 0
	ModCtrl  HotKeyModifier = 1 << 1
	ModAlt   HotKeyModifier = 1 << 2
)

// HotKey is the ShellLinkHeader's two raw hotkey bytes, kept verbatim
// (low byte virtual-key code, high byte modifier mask) plus a display
// helper that translates them the way Windows does in a shortcut's
// Properties dialog.
type HotKey struct {
	VirtualKey byte
	Modifiers  HotKeyModifier
}

// Shift reports whether the SHIFT modifier bit is set.
func (h HotKey) Shift() bool { return h.Modifiers&ModShift != 0 }

// Ctrl reports whether the CTRL modifier bit is set.
func (h HotKey) Ctrl() bool { return h.Modifiers&ModCtrl != 0 }

// Alt reports whether the ALT modifier bit is set.
func (h HotKey) Alt() bool { return h.Modifiers&ModAlt != 0 }

// KeyName translates the low byte into the key name Windows displays,
// covering the digit, letter, function-key, NUM LOCK and SCROLL LOCK
// ranges defined for this field. A VirtualKey of 0 (no hotkey assigned)
// and any value outside the defined ranges both yield "".
func (h HotKey) KeyName() string {
	switch {
	case h.VirtualKey == 0:
		return ""
	case h.VirtualKey >= 0x30 && h.VirtualKey <= 0x39: // '0'-'9'
		return string(rune(h.VirtualKey))
	case h.VirtualKey >= 0x41 && h.VirtualKey <= 0x5A: // 'A'-'Z'
		return string(rune(h.VirtualKey))
	case h.VirtualKey >= 0x70 && h.VirtualKey <= 0x87: // F1-F24
		return fmt.Sprintf("F%d", int(h.VirtualKey)-0x6F)
	case h.VirtualKey == 0x90:
		return "NUM LOCK"
	case h.VirtualKey == 0x91:
		return "SCROLL LOCK"
	default:
		return ""
	}
}

// String renders the hotkey the way Windows does, e.g. "SHIFT+CTRL / F5".
// An unassigned or undisplayable hotkey renders as "".
func (h HotKey) String() string {
	name := h.KeyName()
	if name == "" {
		return ""
	}
	var mods []string
	if h.Shift() {
		mods = append(mods, "SHIFT")
	}
	if h.Ctrl() {
		mods = append(mods, "CTRL")
	}
	if h.Alt() {
		mods = append(mods, "ALT")
	}
	if len(mods) == 0 {
		return name
	}
	return strings.Join(mods, "+") + " / " + name
}
