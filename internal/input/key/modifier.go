package key

import "strings"

// Modifier is a bitmask of modifier keys.
type Modifier uint8

const (
	// ModNone means no modifiers.
	ModNone Modifier = 0

	// ModCtrl is the Control key.
	ModCtrl Modifier = 1 << iota

	// ModAlt is the Alt/Option key.
	ModAlt

	// ModShift is the Shift key.
	ModShift

	// ModMeta is the Meta/Command/Super key.
	ModMeta
)

// With returns the modifier set with m added.
func (mod Modifier) With(m Modifier) Modifier {
	return mod | m
}

// Has returns true if m is set.
func (mod Modifier) Has(m Modifier) bool {
	return mod&m != 0
}

// prefix returns the token prefix for the modifier set, in the fixed
// order Ctrl, Alt, Shift, Meta ("C-A-" for Ctrl+Alt).
func (mod Modifier) prefix() string {
	if mod == ModNone {
		return ""
	}

	var sb strings.Builder
	if mod.Has(ModCtrl) {
		sb.WriteString("C-")
	}
	if mod.Has(ModAlt) {
		sb.WriteString("A-")
	}
	if mod.Has(ModShift) {
		sb.WriteString("S-")
	}
	if mod.Has(ModMeta) {
		sb.WriteString("M-")
	}
	return sb.String()
}

// modifierFromName maps a single-letter modifier name to its flag.
// Returns ModNone for unknown names.
func modifierFromName(name string) Modifier {
	switch strings.ToLower(name) {
	case "c":
		return ModCtrl
	case "a":
		return ModAlt
	case "s":
		return ModShift
	case "m", "d":
		return ModMeta
	}
	return ModNone
}
