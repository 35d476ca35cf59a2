package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigtoggle/sigtoggle/internal/chord"
)

func TestKeyForCode(t *testing.T) {
	tests := []struct {
		code uint16
		want chord.Key
	}{
		{1, chord.Named(chord.KeyEsc)},
		{2, chord.Literal('1')},
		{11, chord.Literal('0')},
		{16, chord.Literal('q')},
		{25, chord.Literal('p')},
		{30, chord.Literal('a')},
		{38, chord.Literal('l')},
		{44, chord.Literal('z')},
		{50, chord.Literal('m')},
		{29, chord.Named(chord.KeyCtrl)},
		{97, chord.Named(chord.KeyCtrl)},
		{56, chord.Named(chord.KeyAlt)},
		{100, chord.Named(chord.KeyAlt)},
		{42, chord.Named(chord.KeyShift)},
		{54, chord.Named(chord.KeyShift)},
		{125, chord.Named(chord.KeyCmd)},
		{59, chord.Named(chord.F(1))},
		{68, chord.Named(chord.F(10))},
		{87, chord.Named(chord.F(11))},
		{88, chord.Named(chord.F(12))},
		{183, chord.Named(chord.F(13))},
		{190, chord.Named(chord.F(20))},
		{164, chord.Named(chord.KeyMediaPlayPause)},
		{113, chord.Named(chord.KeyMediaVolumeMute)},
		{57, chord.Named(chord.KeySpace)},
		{240, chord.Unnamed(240)},
	}

	for _, test := range tests {
		t.Run(test.want.String(), func(t *testing.T) {
			assert.Equal(t, test.want, KeyForCode(test.code))
		})
	}
}

func TestKeyCodesCoverParsedNames(t *testing.T) {
	for _, entry := range chord.Names() {
		c, err := chord.Parse(entry.Name)
		if !assert.NoError(t, err) {
			continue
		}

		assert.Empty(t, Unreachable(c), "no key code produces %s", entry.Name)
	}
}

func TestUnreachable(t *testing.T) {
	tests := []struct {
		chord string
		want  []chord.Key
	}{
		{"ctrl+alt+p", nil},
		{"f12", nil},
		{"ctrl+!", []chord.Key{chord.Literal('!')}},
		{"é+shift", []chord.Key{chord.Literal('é')}},
	}

	for _, test := range tests {
		t.Run(test.chord, func(t *testing.T) {
			c, err := chord.Parse(test.chord)
			assert.NoError(t, err)
			assert.Equal(t, test.want, Unreachable(c))
		})
	}
}
