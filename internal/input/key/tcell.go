package key

import "github.com/gdamore/tcell/v2"

// FromTcell normalizes a raw tcell key event into an Event.
func FromTcell(ev *tcell.EventKey) Event {
	mods := modsFromTcell(ev.Modifiers())

	k := ev.Key()

	switch k {
	case tcell.KeyRune:
		return NewRune(ev.Rune(), mods)
	case tcell.KeyEscape:
		return NewSpecial(KeyEscape, mods)
	case tcell.KeyEnter:
		return NewSpecial(KeyEnter, mods)
	case tcell.KeyTab:
		return NewSpecial(KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return NewSpecial(KeyBackspace, mods)
	case tcell.KeyDelete:
		return NewSpecial(KeyDelete, mods)
	case tcell.KeyUp:
		return NewSpecial(KeyUp, mods)
	case tcell.KeyDown:
		return NewSpecial(KeyDown, mods)
	case tcell.KeyLeft:
		return NewSpecial(KeyLeft, mods)
	case tcell.KeyRight:
		return NewSpecial(KeyRight, mods)
	case tcell.KeyHome:
		return NewSpecial(KeyHome, mods)
	case tcell.KeyEnd:
		return NewSpecial(KeyEnd, mods)
	}

	// tcell reports remaining Ctrl+letter combinations as dedicated key
	// codes; Tab and Enter overlap this range and are handled above.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + (k - tcell.KeyCtrlA))
		return NewRune(r, mods.With(ModCtrl))
	}

	return Event{Key: KeyNone, Mod: mods}
}

func modsFromTcell(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}
	return mods
}
