package chord

// Matcher tracks which keys are held and detects when exactly the chord is
// held. It is owned by the goroutine delivering key events and is not safe
// for concurrent use.
type Matcher struct {
	chord   Chord
	pressed map[Key]struct{}
}

func NewMatcher(c Chord) *Matcher {
	return &Matcher{
		chord:   c,
		pressed: make(map[Key]struct{}),
	}
}

// Chord returns the chord being matched.
func (m *Matcher) Chord() Chord {
	return m.chord
}

// Press records k as held. It returns true when k was not already held and
// the held set is now exactly the chord. Extra keys break the match, and a
// repeated press of a held key (autorepeat) is not a new match.
func (m *Matcher) Press(k Key) bool {
	if !k.IsValid() {
		return false
	}

	if _, held := m.pressed[k]; held {
		return false
	}

	m.pressed[k] = struct{}{}
	return m.matches()
}

// Release drops k from the held set.
func (m *Matcher) Release(k Key) {
	delete(m.pressed, k)
}

func (m *Matcher) matches() bool {
	if len(m.pressed) != m.chord.Len() {
		return false
	}

	for k := range m.pressed {
		if !m.chord.Contains(k) {
			return false
		}
	}

	return true
}
