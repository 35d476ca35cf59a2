package trigger

import (
	"context"

	"github.com/safedep/dry/log"

	"github.com/sigtoggle/sigtoggle/internal/chord"
	"github.com/sigtoggle/sigtoggle/internal/keyboard"
)

// Handler feeds raw key events through the chord matcher into the
// controller.
type Handler struct {
	matcher    *chord.Matcher
	controller *Controller
}

var _ keyboard.KeyHandler = (*Handler)(nil)

func NewHandler(matcher *chord.Matcher, controller *Controller) *Handler {
	return &Handler{matcher: matcher, controller: controller}
}

func (h *Handler) OnPress(ctx context.Context, k chord.Key) error {
	if !h.matcher.Press(k) {
		return nil
	}

	log.Debugf("Chord %s matched", h.matcher.Chord())

	_, err := h.controller.Match(ctx)
	return err
}

func (h *Handler) OnRelease(_ context.Context, k chord.Key) error {
	h.matcher.Release(k)
	return nil
}
