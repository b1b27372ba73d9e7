package layout

import (
	kc "github.com/Alia5/dactylkeys/keycode"
)

// Factory legend, one slice per cluster row. Slots past the end of a legend
// row get keycode.Reserved.
var factoryLegend = map[Cluster][][]kc.Code{
	LeftHand: {
		{kc.KeyEscape, kc.Key1, kc.Key2, kc.Key3, kc.Key4, kc.Key5, kc.Key6},
		{kc.KeyTab, kc.KeyQ, kc.KeyW, kc.KeyE, kc.KeyR, kc.KeyT, kc.KeyY},
		{kc.KeyCapsLock, kc.KeyA, kc.KeyS, kc.KeyD, kc.KeyF, kc.KeyG, kc.KeyH},
		{kc.KeyLeftShift, kc.KeyZ, kc.KeyX, kc.KeyC, kc.KeyV, kc.KeyB},
		{kc.KeyLeftCtrl, kc.KeyLeftAlt, kc.KeyLeftGUI, kc.Lower},
	},
	RightHand: {
		{kc.Key7, kc.Key8, kc.Key9, kc.Key0, kc.KeyMinus, kc.KeyEqual, kc.KeyBackspace},
		{kc.KeyU, kc.KeyI, kc.KeyO, kc.KeyP, kc.KeyLeftBrace, kc.KeyRightBrace, kc.KeyBackslash},
		{kc.KeyJ, kc.KeyK, kc.KeyL, kc.KeySemicolon, kc.KeyApostrophe, kc.KeyEnter},
		{kc.KeyN, kc.KeyM, kc.KeyComma, kc.KeyPeriod, kc.KeySlash, kc.KeyRightShift},
		{kc.Raise, kc.KeyRightGUI, kc.KeyRightAlt, kc.KeyRightCtrl},
	},
	LeftThumb: {
		{kc.KeyHome, kc.KeyEnd},
		{kc.KeyPageUp, kc.KeyPageDown},
		{kc.KeySpace, kc.KeyBackspace},
	},
	RightThumb: {
		{kc.KeyLeft, kc.KeyRight},
		{kc.KeyUp, kc.KeyDown},
		{kc.KeyDelete, kc.KeyEnter},
	},
}

// Default returns the factory keymap covering every physical slot.
func Default() Keymap {
	keys := make(map[Position]kc.Code, 74)
	for _, c := range Clusters() {
		legend := factoryLegend[c]
		for i, row := range c.Rows() {
			for j, p := range row {
				code := kc.Reserved
				if i < len(legend) && j < len(legend[i]) {
					code = legend[i][j]
				}
				keys[p] = code
			}
		}
	}
	return Keymap{keys: keys}
}
