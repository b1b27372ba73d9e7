package keycode

// HID usage codes (Keyboard/Keypad usage page 0x07) plus the Dactyl extensions.
// Each constant's value is its one-byte identifier.
const (
	// Error states
	KeyErrorRollOver  Code = 0x01 // Keyboard ErrorRollOver
	KeyPOSTFail       Code = 0x02 // Keyboard POSTFail
	KeyErrorUndefined Code = 0x03 // Keyboard ErrorUndefined

	// Letters
	KeyA Code = 0x04
	KeyB Code = 0x05
	KeyC Code = 0x06
	KeyD Code = 0x07
	KeyE Code = 0x08
	KeyF Code = 0x09
	KeyG Code = 0x0A
	KeyH Code = 0x0B
	KeyI Code = 0x0C
	KeyJ Code = 0x0D
	KeyK Code = 0x0E
	KeyL Code = 0x0F
	KeyM Code = 0x10
	KeyN Code = 0x11
	KeyO Code = 0x12
	KeyP Code = 0x13
	KeyQ Code = 0x14
	KeyR Code = 0x15
	KeyS Code = 0x16
	KeyT Code = 0x17
	KeyU Code = 0x18
	KeyV Code = 0x19
	KeyW Code = 0x1A
	KeyX Code = 0x1B
	KeyY Code = 0x1C
	KeyZ Code = 0x1D

	// Top row digits
	Key1 Code = 0x1E
	Key2 Code = 0x1F
	Key3 Code = 0x20
	Key4 Code = 0x21
	Key5 Code = 0x22
	Key6 Code = 0x23
	Key7 Code = 0x24
	Key8 Code = 0x25
	Key9 Code = 0x26
	Key0 Code = 0x27

	// Editing and punctuation
	KeyEnter      Code = 0x28
	KeyEscape     Code = 0x29
	KeyBackspace  Code = 0x2A
	KeyTab        Code = 0x2B
	KeySpace      Code = 0x2C
	KeyMinus      Code = 0x2D // - and _
	KeyEqual      Code = 0x2E // = and +
	KeyLeftBrace  Code = 0x2F // [ and {
	KeyRightBrace Code = 0x30 // ] and }
	KeyBackslash  Code = 0x31 // \ and |
	KeyNonUSHash  Code = 0x32 // Non-US # and ~
	KeySemicolon  Code = 0x33 // ; and :
	KeyApostrophe Code = 0x34 // ' and "
	KeyGrave      Code = 0x35 // ` and ~
	KeyComma      Code = 0x36 // , and <
	KeyPeriod     Code = 0x37 // . and >
	KeySlash      Code = 0x38 // / and ?
	KeyCapsLock   Code = 0x39

	// Function keys
	KeyF1  Code = 0x3A
	KeyF2  Code = 0x3B
	KeyF3  Code = 0x3C
	KeyF4  Code = 0x3D
	KeyF5  Code = 0x3E
	KeyF6  Code = 0x3F
	KeyF7  Code = 0x40
	KeyF8  Code = 0x41
	KeyF9  Code = 0x42
	KeyF10 Code = 0x43
	KeyF11 Code = 0x44
	KeyF12 Code = 0x45

	// Control keys
	KeyPrintScreen Code = 0x46
	KeyScrollLock  Code = 0x47
	KeyPause       Code = 0x48
	KeyInsert      Code = 0x49
	KeyHome        Code = 0x4A
	KeyPageUp      Code = 0x4B
	KeyDelete      Code = 0x4C
	KeyEnd         Code = 0x4D
	KeyPageDown    Code = 0x4E

	// Arrows
	KeyRight Code = 0x4F
	KeyLeft  Code = 0x50
	KeyDown  Code = 0x51
	KeyUp    Code = 0x52

	// Keypad
	KeyNumLock    Code = 0x53
	KeyKpSlash    Code = 0x54
	KeyKpAsterisk Code = 0x55
	KeyKpMinus    Code = 0x56
	KeyKpPlus     Code = 0x57
	KeyKpEnter    Code = 0x58
	KeyKp1        Code = 0x59 // Keypad 1 and End
	KeyKp2        Code = 0x5A // Keypad 2 and Down
	KeyKp3        Code = 0x5B // Keypad 3 and PageDn
	KeyKp4        Code = 0x5C // Keypad 4 and Left
	KeyKp5        Code = 0x5D // Keypad 5
	KeyKp6        Code = 0x5E // Keypad 6 and Right
	KeyKp7        Code = 0x5F // Keypad 7 and Home
	KeyKp8        Code = 0x60 // Keypad 8 and Up
	KeyKp9        Code = 0x61 // Keypad 9 and PageUp
	KeyKp0        Code = 0x62 // Keypad 0 and Insert
	KeyKpDot      Code = 0x63 // Keypad . and Delete

	// Additional keys
	KeyNonUSBackslash Code = 0x64 // Non-US \ and |
	KeyApplication    Code = 0x65 // Application (Windows Menu key)
	KeyPower          Code = 0x66
	KeyKpEqual        Code = 0x67

	// Extended function keys
	KeyF13 Code = 0x68
	KeyF14 Code = 0x69
	KeyF15 Code = 0x6A
	KeyF16 Code = 0x6B
	KeyF17 Code = 0x6C
	KeyF18 Code = 0x6D
	KeyF19 Code = 0x6E
	KeyF20 Code = 0x6F
	KeyF21 Code = 0x70
	KeyF22 Code = 0x71
	KeyF23 Code = 0x72
	KeyF24 Code = 0x73

	// Execution and volume
	KeyExecute    Code = 0x74
	KeyHelp       Code = 0x75
	KeyMenu       Code = 0x76
	KeySelect     Code = 0x77
	KeyStop       Code = 0x78
	KeyAgain      Code = 0x79 // Redo
	KeyUndo       Code = 0x7A
	KeyCut        Code = 0x7B
	KeyCopy       Code = 0x7C
	KeyPaste      Code = 0x7D
	KeyFind       Code = 0x7E
	KeyMute       Code = 0x7F
	KeyVolumeUp   Code = 0x80
	KeyVolumeDown Code = 0x81

	// Locking keys and legacy keypad
	KeyLockingCapsLock   Code = 0x82
	KeyLockingNumLock    Code = 0x83
	KeyLockingScrollLock Code = 0x84
	KeyKpComma           Code = 0x85
	KeyKpEqualSign       Code = 0x86 // Keypad Equal Sign (AS/400)

	// International and language keys
	KeyInternational1 Code = 0x87
	KeyInternational2 Code = 0x88
	KeyInternational3 Code = 0x89
	KeyInternational4 Code = 0x8A
	KeyInternational5 Code = 0x8B
	KeyInternational6 Code = 0x8C
	KeyInternational7 Code = 0x8D
	KeyInternational8 Code = 0x8E
	KeyInternational9 Code = 0x8F
	KeyLang1          Code = 0x90
	KeyLang2          Code = 0x91
	KeyLang3          Code = 0x92
	KeyLang4          Code = 0x93
	KeyLang5          Code = 0x94
	KeyLang6          Code = 0x95
	KeyLang7          Code = 0x96
	KeyLang8          Code = 0x97
	KeyLang9          Code = 0x98

	// Terminal keys
	KeyAltErase   Code = 0x99 // Alternate Erase
	KeySysReq     Code = 0x9A // SysReq/Attention
	KeyCancel     Code = 0x9B
	KeyClear      Code = 0x9C
	KeyPrior      Code = 0x9D
	KeyReturn     Code = 0x9E
	KeySeparator  Code = 0x9F
	KeyOut        Code = 0xA0
	KeyOper       Code = 0xA1
	KeyClearAgain Code = 0xA2 // Clear/Again
	KeyCrSel      Code = 0xA3 // CrSel/Props
	KeyExSel      Code = 0xA4

	// Extended keypad
	// 0xA5-0xAF reserved
	KeyKp00               Code = 0xB0
	KeyKp000              Code = 0xB1
	KeyThousandsSeparator Code = 0xB2
	KeyDecimalSeparator   Code = 0xB3
	KeyCurrencyUnit       Code = 0xB4
	KeyCurrencySubunit    Code = 0xB5
	KeyKpLeftParen        Code = 0xB6 // Keypad (
	KeyKpRightParen       Code = 0xB7 // Keypad )
	KeyKpLeftBrace        Code = 0xB8 // Keypad {
	KeyKpRightBrace       Code = 0xB9 // Keypad }
	KeyKpTab              Code = 0xBA
	KeyKpBackspace        Code = 0xBB
	KeyKpA                Code = 0xBC
	KeyKpB                Code = 0xBD
	KeyKpC                Code = 0xBE
	KeyKpD                Code = 0xBF
	KeyKpE                Code = 0xC0
	KeyKpF                Code = 0xC1
	KeyKpXor              Code = 0xC2 // Keypad XOR
	KeyKpCaret            Code = 0xC3 // Keypad ^
	KeyKpPercent          Code = 0xC4 // Keypad %
	KeyKpLess             Code = 0xC5 // Keypad <
	KeyKpGreater          Code = 0xC6 // Keypad >
	KeyKpAmpersand        Code = 0xC7 // Keypad &
	KeyKpDoubleAmpersand  Code = 0xC8 // Keypad &&
	KeyKpBar              Code = 0xC9 // Keypad |
	KeyKpDoubleBar        Code = 0xCA // Keypad ||
	KeyKpColon            Code = 0xCB // Keypad :
	KeyKpHash             Code = 0xCC // Keypad #
	KeyKpSpace            Code = 0xCD
	KeyKpAt               Code = 0xCE // Keypad @
	KeyKpBang             Code = 0xCF // Keypad !
	KeyKpMemStore         Code = 0xD0
	KeyKpMemRecall        Code = 0xD1
	KeyKpMemClear         Code = 0xD2
	KeyKpMemAdd           Code = 0xD3
	KeyKpMemSubtract      Code = 0xD4
	KeyKpMemMultiply      Code = 0xD5
	KeyKpMemDivide        Code = 0xD6
	KeyKpPlusMinus        Code = 0xD7 // Keypad +/-
	KeyKpClear            Code = 0xD8
	KeyKpClearEntry       Code = 0xD9
	KeyKpBinary           Code = 0xDA
	KeyKpOctal            Code = 0xDB
	KeyKpDecimal          Code = 0xDC
	KeyKpHexadecimal      Code = 0xDD

	// Modifiers
	// 0xDE-0xDF reserved
	KeyLeftCtrl   Code = 0xE0
	KeyLeftShift  Code = 0xE1
	KeyLeftAlt    Code = 0xE2
	KeyLeftGUI    Code = 0xE3
	KeyRightCtrl  Code = 0xE4
	KeyRightShift Code = 0xE5
	KeyRightAlt   Code = 0xE6
	KeyRightGUI   Code = 0xE7

	// Product extensions
	Reserved Code = 0xE8 // sentinel: unassigned bytes and unknown labels
	Raise    Code = 0xE9
	Lower    Code = 0xEA
	// 0xEB-0xFE reserved
	Empty Code = 0xFF
)

// usages is the single canonical source for every lookup in this package.
var usages = []usage{
	// Error states
	named(KeyErrorRollOver, "KeyErrorRollOver"),
	named(KeyPOSTFail, "KeyPOSTFail"),
	named(KeyErrorUndefined, "KeyErrorUndefined"),

	// Letters
	labeled(KeyA, "KeyA", "A"),
	labeled(KeyB, "KeyB", "B"),
	labeled(KeyC, "KeyC", "C"),
	labeled(KeyD, "KeyD", "D"),
	labeled(KeyE, "KeyE", "E"),
	labeled(KeyF, "KeyF", "F"),
	labeled(KeyG, "KeyG", "G"),
	labeled(KeyH, "KeyH", "H"),
	labeled(KeyI, "KeyI", "I"),
	labeled(KeyJ, "KeyJ", "J"),
	labeled(KeyK, "KeyK", "K"),
	labeled(KeyL, "KeyL", "L"),
	labeled(KeyM, "KeyM", "M"),
	labeled(KeyN, "KeyN", "N"),
	labeled(KeyO, "KeyO", "O"),
	labeled(KeyP, "KeyP", "P"),
	labeled(KeyQ, "KeyQ", "Q"),
	labeled(KeyR, "KeyR", "R"),
	labeled(KeyS, "KeyS", "S"),
	labeled(KeyT, "KeyT", "T"),
	labeled(KeyU, "KeyU", "U"),
	labeled(KeyV, "KeyV", "V"),
	labeled(KeyW, "KeyW", "W"),
	labeled(KeyX, "KeyX", "X"),
	labeled(KeyY, "KeyY", "Y"),
	labeled(KeyZ, "KeyZ", "Z"),

	// Top row digits
	labeled(Key1, "Key1", "1"),
	labeled(Key2, "Key2", "2"),
	labeled(Key3, "Key3", "3"),
	labeled(Key4, "Key4", "4"),
	labeled(Key5, "Key5", "5"),
	labeled(Key6, "Key6", "6"),
	labeled(Key7, "Key7", "7"),
	labeled(Key8, "Key8", "8"),
	labeled(Key9, "Key9", "9"),
	labeled(Key0, "Key0", "0"),

	// Editing and punctuation
	labeled(KeyEnter, "KeyEnter", "Enter"),
	labeled(KeyEscape, "KeyEscape", "Esc"),
	labeled(KeyBackspace, "KeyBackspace", "BKSP"),
	labeled(KeyTab, "KeyTab", "Tab"),
	labeled(KeySpace, "KeySpace", "Space"),
	labeled(KeyMinus, "KeyMinus", "-"),
	labeled(KeyEqual, "KeyEqual", "="),
	labeled(KeyLeftBrace, "KeyLeftBrace", "["),
	labeled(KeyRightBrace, "KeyRightBrace", "]"),
	labeled(KeyBackslash, "KeyBackslash", "\\"),
	named(KeyNonUSHash, "KeyNonUSHash"),
	labeled(KeySemicolon, "KeySemicolon", ";"),
	labeled(KeyApostrophe, "KeyApostrophe", "'"),
	labeled(KeyGrave, "KeyGrave", "`"),
	labeled(KeyComma, "KeyComma", ","),
	labeled(KeyPeriod, "KeyPeriod", "."),
	labeled(KeySlash, "KeySlash", "/"),
	labeled(KeyCapsLock, "KeyCapsLock", "Caps"),

	// Function keys
	labeled(KeyF1, "KeyF1", "F1"),
	labeled(KeyF2, "KeyF2", "F2"),
	labeled(KeyF3, "KeyF3", "F3"),
	labeled(KeyF4, "KeyF4", "F4"),
	labeled(KeyF5, "KeyF5", "F5"),
	labeled(KeyF6, "KeyF6", "F6"),
	labeled(KeyF7, "KeyF7", "F7"),
	labeled(KeyF8, "KeyF8", "F8"),
	labeled(KeyF9, "KeyF9", "F9"),
	labeled(KeyF10, "KeyF10", "F10"),
	labeled(KeyF11, "KeyF11", "F11"),
	labeled(KeyF12, "KeyF12", "F12"),

	// Control keys
	labeled(KeyPrintScreen, "KeyPrintScreen", "PrtSc"),
	labeled(KeyScrollLock, "KeyScrollLock", "ScrLk"),
	labeled(KeyPause, "KeyPause", "Pause"),
	labeled(KeyInsert, "KeyInsert", "Ins"),
	labeled(KeyHome, "KeyHome", "Home"),
	labeled(KeyPageUp, "KeyPageUp", "PgUp"),
	labeled(KeyDelete, "KeyDelete", "Del"),
	labeled(KeyEnd, "KeyEnd", "End"),
	labeled(KeyPageDown, "KeyPageDown", "PgDn"),

	// Arrows
	labeled(KeyRight, "KeyRight", "→"),
	labeled(KeyLeft, "KeyLeft", "←"),
	labeled(KeyDown, "KeyDown", "↓"),
	labeled(KeyUp, "KeyUp", "↑"),

	// Keypad
	labeled(KeyNumLock, "KeyNumLock", "NumLk"),
	labeled(KeyKpSlash, "KeyKpSlash", "Num /"),
	labeled(KeyKpAsterisk, "KeyKpAsterisk", "Num *"),
	labeled(KeyKpMinus, "KeyKpMinus", "Num -"),
	labeled(KeyKpPlus, "KeyKpPlus", "Num +"),
	labeled(KeyKpEnter, "KeyKpEnter", "Num Ent"),
	labeled(KeyKp1, "KeyKp1", "Num 1"),
	labeled(KeyKp2, "KeyKp2", "Num 2"),
	labeled(KeyKp3, "KeyKp3", "Num 3"),
	labeled(KeyKp4, "KeyKp4", "Num 4"),
	labeled(KeyKp5, "KeyKp5", "Num 5"),
	labeled(KeyKp6, "KeyKp6", "Num 6"),
	labeled(KeyKp7, "KeyKp7", "Num 7"),
	labeled(KeyKp8, "KeyKp8", "Num 8"),
	labeled(KeyKp9, "KeyKp9", "Num 9"),
	labeled(KeyKp0, "KeyKp0", "Num 0"),
	labeled(KeyKpDot, "KeyKpDot", "Num ."),

	// Additional keys
	named(KeyNonUSBackslash, "KeyNonUSBackslash"),
	labeled(KeyApplication, "KeyApplication", "App"),
	labeled(KeyPower, "KeyPower", "Power"),
	labeled(KeyKpEqual, "KeyKpEqual", "Num ="),

	// Extended function keys
	named(KeyF13, "KeyF13"),
	named(KeyF14, "KeyF14"),
	named(KeyF15, "KeyF15"),
	named(KeyF16, "KeyF16"),
	named(KeyF17, "KeyF17"),
	named(KeyF18, "KeyF18"),
	named(KeyF19, "KeyF19"),
	named(KeyF20, "KeyF20"),
	named(KeyF21, "KeyF21"),
	named(KeyF22, "KeyF22"),
	named(KeyF23, "KeyF23"),
	named(KeyF24, "KeyF24"),

	// Execution and volume
	named(KeyExecute, "KeyExecute"),
	named(KeyHelp, "KeyHelp"),
	named(KeyMenu, "KeyMenu"),
	named(KeySelect, "KeySelect"),
	named(KeyStop, "KeyStop"),
	named(KeyAgain, "KeyAgain"),
	named(KeyUndo, "KeyUndo"),
	named(KeyCut, "KeyCut"),
	named(KeyCopy, "KeyCopy"),
	named(KeyPaste, "KeyPaste"),
	named(KeyFind, "KeyFind"),
	labeled(KeyMute, "KeyMute", "Mute"),
	labeled(KeyVolumeUp, "KeyVolumeUp", "Vol+"),
	labeled(KeyVolumeDown, "KeyVolumeDown", "Vol-"),

	// Locking keys and legacy keypad
	named(KeyLockingCapsLock, "KeyLockingCapsLock"),
	named(KeyLockingNumLock, "KeyLockingNumLock"),
	named(KeyLockingScrollLock, "KeyLockingScrollLock"),
	named(KeyKpComma, "KeyKpComma"),
	named(KeyKpEqualSign, "KeyKpEqualSign"),

	// International and language keys
	named(KeyInternational1, "KeyInternational1"),
	named(KeyInternational2, "KeyInternational2"),
	named(KeyInternational3, "KeyInternational3"),
	named(KeyInternational4, "KeyInternational4"),
	named(KeyInternational5, "KeyInternational5"),
	named(KeyInternational6, "KeyInternational6"),
	named(KeyInternational7, "KeyInternational7"),
	named(KeyInternational8, "KeyInternational8"),
	named(KeyInternational9, "KeyInternational9"),
	named(KeyLang1, "KeyLang1"),
	named(KeyLang2, "KeyLang2"),
	named(KeyLang3, "KeyLang3"),
	named(KeyLang4, "KeyLang4"),
	named(KeyLang5, "KeyLang5"),
	named(KeyLang6, "KeyLang6"),
	named(KeyLang7, "KeyLang7"),
	named(KeyLang8, "KeyLang8"),
	named(KeyLang9, "KeyLang9"),

	// Terminal keys
	named(KeyAltErase, "KeyAltErase"),
	named(KeySysReq, "KeySysReq"),
	named(KeyCancel, "KeyCancel"),
	named(KeyClear, "KeyClear"),
	named(KeyPrior, "KeyPrior"),
	named(KeyReturn, "KeyReturn"),
	named(KeySeparator, "KeySeparator"),
	named(KeyOut, "KeyOut"),
	named(KeyOper, "KeyOper"),
	named(KeyClearAgain, "KeyClearAgain"),
	named(KeyCrSel, "KeyCrSel"),
	named(KeyExSel, "KeyExSel"),

	// Extended keypad
	named(KeyKp00, "KeyKp00"),
	named(KeyKp000, "KeyKp000"),
	named(KeyThousandsSeparator, "KeyThousandsSeparator"),
	named(KeyDecimalSeparator, "KeyDecimalSeparator"),
	named(KeyCurrencyUnit, "KeyCurrencyUnit"),
	named(KeyCurrencySubunit, "KeyCurrencySubunit"),
	named(KeyKpLeftParen, "KeyKpLeftParen"),
	named(KeyKpRightParen, "KeyKpRightParen"),
	named(KeyKpLeftBrace, "KeyKpLeftBrace"),
	named(KeyKpRightBrace, "KeyKpRightBrace"),
	named(KeyKpTab, "KeyKpTab"),
	named(KeyKpBackspace, "KeyKpBackspace"),
	named(KeyKpA, "KeyKpA"),
	named(KeyKpB, "KeyKpB"),
	named(KeyKpC, "KeyKpC"),
	named(KeyKpD, "KeyKpD"),
	named(KeyKpE, "KeyKpE"),
	named(KeyKpF, "KeyKpF"),
	named(KeyKpXor, "KeyKpXor"),
	named(KeyKpCaret, "KeyKpCaret"),
	named(KeyKpPercent, "KeyKpPercent"),
	named(KeyKpLess, "KeyKpLess"),
	named(KeyKpGreater, "KeyKpGreater"),
	named(KeyKpAmpersand, "KeyKpAmpersand"),
	named(KeyKpDoubleAmpersand, "KeyKpDoubleAmpersand"),
	named(KeyKpBar, "KeyKpBar"),
	named(KeyKpDoubleBar, "KeyKpDoubleBar"),
	named(KeyKpColon, "KeyKpColon"),
	named(KeyKpHash, "KeyKpHash"),
	named(KeyKpSpace, "KeyKpSpace"),
	named(KeyKpAt, "KeyKpAt"),
	named(KeyKpBang, "KeyKpBang"),
	named(KeyKpMemStore, "KeyKpMemStore"),
	named(KeyKpMemRecall, "KeyKpMemRecall"),
	named(KeyKpMemClear, "KeyKpMemClear"),
	named(KeyKpMemAdd, "KeyKpMemAdd"),
	named(KeyKpMemSubtract, "KeyKpMemSubtract"),
	named(KeyKpMemMultiply, "KeyKpMemMultiply"),
	named(KeyKpMemDivide, "KeyKpMemDivide"),
	named(KeyKpPlusMinus, "KeyKpPlusMinus"),
	named(KeyKpClear, "KeyKpClear"),
	named(KeyKpClearEntry, "KeyKpClearEntry"),
	named(KeyKpBinary, "KeyKpBinary"),
	named(KeyKpOctal, "KeyKpOctal"),
	named(KeyKpDecimal, "KeyKpDecimal"),
	named(KeyKpHexadecimal, "KeyKpHexadecimal"),

	// Modifiers
	labeled(KeyLeftCtrl, "KeyLeftCtrl", "L Ctrl"),
	labeled(KeyLeftShift, "KeyLeftShift", "L Shift"),
	labeled(KeyLeftAlt, "KeyLeftAlt", "L Alt"),
	labeled(KeyLeftGUI, "KeyLeftGUI", "L GUI"),
	labeled(KeyRightCtrl, "KeyRightCtrl", "R Ctrl"),
	labeled(KeyRightShift, "KeyRightShift", "R Shift"),
	labeled(KeyRightAlt, "KeyRightAlt", "R Alt"),
	labeled(KeyRightGUI, "KeyRightGUI", "R GUI"),

	// Product extensions
	named(Reserved, "Reserved"),
	labeled(Raise, "Raise", "Raise"),
	labeled(Lower, "Lower", "Lower"),
	labeled(Empty, "Empty", ""),
}
