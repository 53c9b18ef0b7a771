package key

// Key identifies a keyboard key.
// Character keys use KeyRune with the character in Event.Rune.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is a character key; the character is in Event.Rune.
	KeyRune

	// Special keys.
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	// Arrow keys.
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys.
	KeyHome
	KeyEnd
)

// name returns the bracketed-notation name for a special key.
func (k Key) name() string {
	switch k {
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "CR"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	}
	return ""
}

// keyFromName maps a lowercase key name to its Key value.
var keyFromName = map[string]Key{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"cr":        KeyEnter,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"del":       KeyDelete,
	"delete":    KeyDelete,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
}

// Event is a single normalized keystroke.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// NewRune creates a character key event.
func NewRune(r rune, mod Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Mod: mod}
}

// NewSpecial creates a special key event.
func NewSpecial(k Key, mod Modifier) Event {
	return Event{Key: k, Mod: mod}
}

// IsRune returns true for an unmodified printable character key.
// Shift is folded into the rune itself and does not count as a modifier.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Mod&^ModShift == ModNone
}

// Equals returns true if two events describe the same keystroke.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Mod == other.Mod
}
