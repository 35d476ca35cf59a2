package chord

import (
	"fmt"
	"unicode"
)

// SpecialKey is a named, non-character key.
type SpecialKey uint8

const (
	KeyNone SpecialKey = iota

	// Modifiers. Left and right variants collapse into these.
	KeyCtrl
	KeyAlt
	KeyShift
	KeyCmd

	// Navigation and editing
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEsc
	KeyTab
	KeySpace

	// Locks and misc
	KeyCapsLock
	KeyNumLock
	KeyScrollLock
	KeyPrintScreen
	KeyPause
	KeyMenu

	// Function keys, contiguous so F(n) can index them.
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20

	// Media keys
	KeyMediaPlayPause
	KeyMediaNext
	KeyMediaPrevious
	KeyMediaVolumeUp
	KeyMediaVolumeDown
	KeyMediaVolumeMute

	keySentinel
)

// F returns the special key for function key n (1-20), or KeyNone.
func F(n int) SpecialKey {
	if n < 1 || n > 20 {
		return KeyNone
	}

	return KeyF1 + SpecialKey(n-1)
}

// String returns the canonical name used in chord specs.
func (s SpecialKey) String() string {
	if name, ok := canonicalNames[s]; ok {
		return name
	}

	return fmt.Sprintf("SpecialKey(%d)", s)
}

type keyKind uint8

const (
	kindInvalid keyKind = iota
	kindLiteral
	kindNamed
	kindUnnamed
)

// Key identifies one physical key in a chord: either a literal character or
// a named special key. Keys are comparable and safe to use as map keys.
type Key struct {
	kind    keyKind
	char    rune
	special SpecialKey
	code    uint16
}

// Literal returns the key for a character. Letters are case-folded.
func Literal(r rune) Key {
	return Key{kind: kindLiteral, char: unicode.ToLower(r)}
}

// Named returns the key for a special key.
func Named(s SpecialKey) Key {
	return Key{kind: kindNamed, special: s}
}

// Unnamed returns the key for a platform key code that has no name. Such a
// key can be held, and so break a match, but never appears in a parsed chord.
func Unnamed(code uint16) Key {
	return Key{kind: kindUnnamed, code: code}
}

// IsValid reports whether k was built by Literal, Named or Unnamed.
func (k Key) IsValid() bool {
	return k.kind != kindInvalid
}

func (k Key) String() string {
	switch k.kind {
	case kindLiteral:
		return string(k.char)
	case kindNamed:
		return k.special.String()
	case kindUnnamed:
		return fmt.Sprintf("<key %d>", k.code)
	default:
		return "<invalid>"
	}
}
