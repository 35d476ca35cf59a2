package keyboard

import "github.com/sigtoggle/sigtoggle/internal/chord"

// Linux input event codes, see linux/input-event-codes.h.
const (
	codeEsc        = 1
	codeMinus      = 12
	codeEqual      = 13
	codeBackspace  = 14
	codeTab        = 15
	codeLeftBrace  = 26
	codeRightBrace = 27
	codeEnter      = 28
	codeLeftCtrl   = 29
	codeSemicolon  = 39
	codeApostrophe = 40
	codeGrave      = 41
	codeLeftShift  = 42
	codeBackslash  = 43
	codeComma      = 51
	codeDot        = 52
	codeSlash      = 53
	codeRightShift = 54
	codeKpAsterisk = 55
	codeLeftAlt    = 56
	codeSpace      = 57
	codeCapsLock   = 58
	codeF1         = 59
	codeNumLock    = 69
	codeScrollLock = 70
	codeF11        = 87
	codeF12        = 88
	codeKpEnter    = 96
	codeRightCtrl  = 97
	codeSysRq      = 99
	codeRightAlt   = 100
	codeHome       = 102
	codeUp         = 103
	codePageUp     = 104
	codeLeft       = 105
	codeRight      = 106
	codeEnd        = 107
	codeDown       = 108
	codePageDown   = 109
	codeInsert     = 110
	codeDelete     = 111
	codeMute       = 113
	codeVolumeDown = 114
	codeVolumeUp   = 115
	codePause      = 119
	codeLeftMeta   = 125
	codeRightMeta  = 126
	codeCompose    = 127
	codeMenu       = 139
	codeNextSong   = 163
	codePlayPause  = 164
	codePrevSong   = 165
	codeF13        = 183
)

var keysByCode = buildKeyTable()

func buildKeyTable() map[uint16]chord.Key {
	table := map[uint16]chord.Key{
		codeEsc:        chord.Named(chord.KeyEsc),
		codeBackspace:  chord.Named(chord.KeyBackspace),
		codeTab:        chord.Named(chord.KeyTab),
		codeEnter:      chord.Named(chord.KeyEnter),
		codeKpEnter:    chord.Named(chord.KeyEnter),
		codeSpace:      chord.Named(chord.KeySpace),
		codeCapsLock:   chord.Named(chord.KeyCapsLock),
		codeNumLock:    chord.Named(chord.KeyNumLock),
		codeScrollLock: chord.Named(chord.KeyScrollLock),
		codeSysRq:      chord.Named(chord.KeyPrintScreen),
		codePause:      chord.Named(chord.KeyPause),
		codeCompose:    chord.Named(chord.KeyMenu),
		codeMenu:       chord.Named(chord.KeyMenu),

		// Left and right modifiers fold into the generic key, the same way
		// ctrl_l and ctrl_r parse.
		codeLeftCtrl:   chord.Named(chord.KeyCtrl),
		codeRightCtrl:  chord.Named(chord.KeyCtrl),
		codeLeftShift:  chord.Named(chord.KeyShift),
		codeRightShift: chord.Named(chord.KeyShift),
		codeLeftAlt:    chord.Named(chord.KeyAlt),
		codeRightAlt:   chord.Named(chord.KeyAlt),
		codeLeftMeta:   chord.Named(chord.KeyCmd),
		codeRightMeta:  chord.Named(chord.KeyCmd),

		codeHome:     chord.Named(chord.KeyHome),
		codeEnd:      chord.Named(chord.KeyEnd),
		codeUp:       chord.Named(chord.KeyUp),
		codeDown:     chord.Named(chord.KeyDown),
		codeLeft:     chord.Named(chord.KeyLeft),
		codeRight:    chord.Named(chord.KeyRight),
		codePageUp:   chord.Named(chord.KeyPageUp),
		codePageDown: chord.Named(chord.KeyPageDown),
		codeInsert:   chord.Named(chord.KeyInsert),
		codeDelete:   chord.Named(chord.KeyDelete),

		codeMute:       chord.Named(chord.KeyMediaVolumeMute),
		codeVolumeDown: chord.Named(chord.KeyMediaVolumeDown),
		codeVolumeUp:   chord.Named(chord.KeyMediaVolumeUp),
		codeNextSong:   chord.Named(chord.KeyMediaNext),
		codePlayPause:  chord.Named(chord.KeyMediaPlayPause),
		codePrevSong:   chord.Named(chord.KeyMediaPrevious),

		codeMinus:      chord.Literal('-'),
		codeEqual:      chord.Literal('='),
		codeLeftBrace:  chord.Literal('['),
		codeRightBrace: chord.Literal(']'),
		codeSemicolon:  chord.Literal(';'),
		codeApostrophe: chord.Literal('\''),
		codeGrave:      chord.Literal('`'),
		codeBackslash:  chord.Literal('\\'),
		codeComma:      chord.Literal(','),
		codeDot:        chord.Literal('.'),
		codeSlash:      chord.Literal('/'),
		codeKpAsterisk: chord.Literal('*'),
	}

	addRow := func(first uint16, chars string) {
		for i, r := range chars {
			table[first+uint16(i)] = chord.Literal(r)
		}
	}

	addRow(2, "1234567890")
	addRow(16, "qwertyuiop")
	addRow(30, "asdfghjkl")
	addRow(44, "zxcvbnm")

	for n := 1; n <= 10; n++ {
		table[codeF1+uint16(n-1)] = chord.Named(chord.F(n))
	}

	table[codeF11] = chord.Named(chord.F(11))
	table[codeF12] = chord.Named(chord.F(12))

	for n := 13; n <= 20; n++ {
		table[codeF13+uint16(n-13)] = chord.Named(chord.F(n))
	}

	return table
}

// KeyForCode maps a Linux key code to a chord key. Codes without a name
// map to an unnamed key so that holding them still breaks a chord.
func KeyForCode(code uint16) chord.Key {
	if k, ok := keysByCode[code]; ok {
		return k
	}

	return chord.Unnamed(code)
}

// Unreachable lists the keys of c that no Linux key code produces. A chord
// holding one of them can never match, eg. a shifted character like '!'.
func Unreachable(c chord.Chord) []chord.Key {
	mapped := make(map[chord.Key]bool, len(keysByCode))
	for _, k := range keysByCode {
		mapped[k] = true
	}

	var missing []chord.Key
	for _, k := range c.Keys() {
		if !mapped[k] {
			missing = append(missing, k)
		}
	}

	return missing
}
