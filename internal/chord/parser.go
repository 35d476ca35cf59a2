package chord

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// ErrInvalidChord is matched by every Parse failure.
var ErrInvalidChord = errors.New("invalid key chord")

const separator = "+"

var canonicalNames = withFunctionKeys(map[SpecialKey]string{
	KeyCtrl:            "ctrl",
	KeyAlt:             "alt",
	KeyShift:           "shift",
	KeyCmd:             "cmd",
	KeyUp:              "up",
	KeyDown:            "down",
	KeyLeft:            "left",
	KeyRight:           "right",
	KeyHome:            "home",
	KeyEnd:             "end",
	KeyPageUp:          "page_up",
	KeyPageDown:        "page_down",
	KeyInsert:          "insert",
	KeyDelete:          "delete",
	KeyBackspace:       "backspace",
	KeyEnter:           "enter",
	KeyEsc:             "esc",
	KeyTab:             "tab",
	KeySpace:           "space",
	KeyCapsLock:        "caps_lock",
	KeyNumLock:         "num_lock",
	KeyScrollLock:      "scroll_lock",
	KeyPrintScreen:     "print_screen",
	KeyPause:           "pause",
	KeyMenu:            "menu",
	KeyMediaPlayPause:  "media_play_pause",
	KeyMediaNext:       "media_next",
	KeyMediaPrevious:   "media_previous",
	KeyMediaVolumeUp:   "media_volume_up",
	KeyMediaVolumeDown: "media_volume_down",
	KeyMediaVolumeMute: "media_volume_mute",
})

// Left/right modifier variants and common spellings. They resolve to the
// same key as the canonical name so a parsed chord and a live event agree.
var aliasNames = map[string]SpecialKey{
	"ctrl_l":  KeyCtrl,
	"ctrl_r":  KeyCtrl,
	"control": KeyCtrl,
	"alt_l":   KeyAlt,
	"alt_r":   KeyAlt,
	"alt_gr":  KeyAlt,
	"shift_l": KeyShift,
	"shift_r": KeyShift,
	"cmd_l":   KeyCmd,
	"cmd_r":   KeyCmd,
	"win":     KeyCmd,
	"super":   KeyCmd,
	"meta":    KeyCmd,
	"escape":  KeyEsc,
	"return":  KeyEnter,
}

var specialKeyByName = buildNameTable()

func withFunctionKeys(names map[SpecialKey]string) map[SpecialKey]string {
	for n := 1; n <= 20; n++ {
		names[F(n)] = fmt.Sprintf("f%d", n)
	}

	return names
}

func buildNameTable() map[string]SpecialKey {
	table := make(map[string]SpecialKey, len(canonicalNames)+len(aliasNames))
	for key, name := range canonicalNames {
		table[name] = key
	}

	for name, key := range aliasNames {
		table[name] = key
	}

	return table
}

// Chord is a parsed trigger specification: a non-empty set of keys that must
// be held together. Build it with Parse.
type Chord struct {
	keys  map[Key]struct{}
	order []Key
}

// Parse turns a spec such as "ctrl+alt+a" or "F12" into a Chord. Tokens are
// separated by "+", trimmed and case-folded. One-character tokens are literal
// keys, longer tokens must name a special key.
func Parse(spec string) (Chord, error) {
	raw := strings.TrimSpace(spec)
	if raw == "" {
		return Chord{}, fmt.Errorf("%w: empty spec", ErrInvalidChord)
	}

	keys := make(map[Key]struct{})
	var order []Key

	for _, token := range strings.Split(raw, separator) {
		key, err := parseToken(token)
		if err != nil {
			return Chord{}, fmt.Errorf("%w: %s in %q", ErrInvalidChord, err, raw)
		}

		if _, seen := keys[key]; seen {
			continue
		}

		keys[key] = struct{}{}
		order = append(order, key)
	}

	return Chord{keys: keys, order: order}, nil
}

func parseToken(token string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(token))
	if name == "" {
		return Key{}, errors.New("empty key token")
	}

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return Literal(r), nil
	}

	special, ok := specialKeyByName[name]
	if !ok {
		return Key{}, fmt.Errorf("unknown key %q", strings.TrimSpace(token))
	}

	return Named(special), nil
}

// Len returns the number of distinct keys in the chord.
func (c Chord) Len() int {
	return len(c.keys)
}

// Contains reports whether k is part of the chord.
func (c Chord) Contains(k Key) bool {
	_, ok := c.keys[k]
	return ok
}

// Keys returns the chord keys in spec order.
func (c Chord) Keys() []Key {
	out := make([]Key, len(c.order))
	copy(out, c.order)
	return out
}

// String returns the canonical spec, e.g. "ctrl+alt+a".
func (c Chord) String() string {
	names := make([]string, len(c.order))
	for i, key := range c.order {
		names[i] = key.String()
	}

	return strings.Join(names, separator)
}

// NameEntry describes one accepted special-key name.
type NameEntry struct {
	Name      string
	Canonical string
	Alias     bool
}

// Names lists every accepted special-key name sorted by canonical key name.
func Names() []NameEntry {
	entries := make([]NameEntry, 0, len(specialKeyByName))
	for name, key := range specialKeyByName {
		canonical := key.String()
		entries = append(entries, NameEntry{
			Name:      name,
			Canonical: canonical,
			Alias:     name != canonical,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if specialKeyByName[a.Canonical] != specialKeyByName[b.Canonical] {
			return specialKeyByName[a.Canonical] < specialKeyByName[b.Canonical]
		}

		if a.Alias != b.Alias {
			return !a.Alias
		}

		return a.Name < b.Name
	})

	return entries
}
