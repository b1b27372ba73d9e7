package keycode

import "strings"

// Category is a named group of codes offered by the key library.
type Category struct {
	Name  string
	Codes []Code
}

var categories = []Category{
	{"Letters", []Code{
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
		KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
	}},
	{"Numbers", []Code{Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9}},
	{"Function Keys", []Code{
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	}},
	{"Modifiers", []Code{
		KeyLeftShift, KeyRightShift, KeyLeftCtrl, KeyRightCtrl,
		KeyLeftAlt, KeyRightAlt, KeyLeftGUI, KeyRightGUI,
	}},
	{"Navigation", []Code{
		KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd, KeyPageUp, KeyPageDown,
		KeyInsert, KeyDelete, KeyBackspace, KeyTab, KeyEscape, KeyPrintScreen, KeyPause, KeyScrollLock,
	}},
	{"Symbols", []Code{
		KeySpace, KeyEnter, KeyMinus, KeyEqual, KeyLeftBrace, KeyRightBrace, KeyBackslash,
		KeySemicolon, KeyApostrophe, KeyComma, KeyPeriod, KeySlash, KeyGrave,
	}},
	{"Special", []Code{
		KeyCapsLock, KeyNumLock, KeyScrollLock, KeyPause, KeyPower,
		KeyMute, KeyVolumeUp, KeyVolumeDown, Raise, Lower, Empty,
	}},
	{"Numpad", []Code{
		KeyKp0, KeyKp1, KeyKp2, KeyKp3, KeyKp4, KeyKp5, KeyKp6, KeyKp7, KeyKp8, KeyKp9,
		KeyKpDot, KeyKpEnter, KeyKpPlus, KeyKpMinus, KeyKpAsterisk, KeyKpSlash, KeyKpEqual,
	}},
}

// Categories returns the key library in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Codes: append([]Code(nil), c.Codes...)}
	}
	return out
}

// LookupCategory finds a category by name, ignoring case.
func LookupCategory(name string) (Category, bool) {
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return Category{Name: c.Name, Codes: append([]Code(nil), c.Codes...)}, true
		}
	}
	return Category{}, false
}
