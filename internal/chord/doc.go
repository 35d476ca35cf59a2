// Package chord parses hotkey specifications such as "ctrl+alt+a" and tracks
// held keys to detect when exactly that combination is down.
//
// Keys are platform neutral: a Key is either a literal character or a named
// special key. Keyboard backends translate their own codes into Keys at the
// boundary, collapsing left and right modifier variants into the generic
// modifier so that specs and live events compare equal.
package chord
