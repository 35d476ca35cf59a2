// Package keyboard delivers global key press and release events.
package keyboard

import (
	"context"
	"errors"

	"github.com/sigtoggle/sigtoggle/internal/chord"
)

var (
	// ErrNoKeyboard is returned when no keyboard device can be read.
	ErrNoKeyboard = errors.New("no readable keyboard device")

	// ErrUnsupported is returned on platforms without a key source.
	ErrUnsupported = errors.New("global key listening is not supported on this platform")
)

// KeyHandler receives key events. Calls are made from a single goroutine,
// one at a time. A returned error stops the source.
type KeyHandler interface {
	OnPress(ctx context.Context, k chord.Key) error
	OnRelease(ctx context.Context, k chord.Key) error
}

// Source listens for key events until ctx is cancelled or the handler
// returns an error. Listen returns nil only when ctx was cancelled.
type Source interface {
	Listen(ctx context.Context, h KeyHandler) error
}

// KeyEvent is one decoded key transition.
type KeyEvent struct {
	Key     chord.Key
	Pressed bool
}

func dispatch(ctx context.Context, h KeyHandler, ev KeyEvent) error {
	if ev.Pressed {
		return h.OnPress(ctx, ev.Key)
	}

	return h.OnRelease(ctx, ev.Key)
}
