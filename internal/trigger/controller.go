// Package trigger decides when a chord match turns into a toggle.
package trigger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/safedep/dry/log"

	"github.com/sigtoggle/sigtoggle/internal/flows"
	"github.com/sigtoggle/sigtoggle/internal/process"
	"github.com/sigtoggle/sigtoggle/usefulerror"
)

// DoublePressWindow is the longest gap between two matches that still
// counts as a double press.
const DoublePressWindow = 400 * time.Millisecond

// Toggler is the engine invoked when the controller fires.
type Toggler interface {
	Toggle(ctx context.Context, h *process.Handle) (flows.Outcome, error)
}

type ControllerConfig struct {
	Pid int

	// Twice requires two matches within DoublePressWindow to fire.
	Twice bool
}

// Controller applies the trigger decision table to chord matches. It is
// not safe for concurrent use; the key listener owns it.
type Controller struct {
	config  ControllerConfig
	probe   process.Probe
	toggler Toggler
	now     func() time.Time

	// lastMatch starts at the zero time so the first match of a run never
	// completes a double press.
	lastMatch time.Time
}

func NewController(config ControllerConfig, probe process.Probe, toggler Toggler) *Controller {
	return &Controller{
		config:  config,
		probe:   probe,
		toggler: toggler,
		now:     time.Now,
	}
}

// Match records a chord match and fires the toggle when the decision table
// says so. It reports whether the toggle fired. The returned error is fatal
// for the listener, including a ProcessNotFound error when the target is
// gone at fire time.
func (c *Controller) Match(ctx context.Context) (bool, error) {
	if !c.shouldFire() {
		log.Debugf("Chord matched, waiting for a second press")
		return false, nil
	}

	h, err := c.probe.Find(c.config.Pid)
	if err != nil {
		if errors.Is(err, process.ErrNotFound) {
			return false, usefulerror.Useful().
				WithCode(usefulerror.ErrCodeProcessNotFound).
				WithHumanError(fmt.Sprintf("Process %d no longer exists", c.config.Pid)).
				WithHelp("The target exited, restart sigtoggle with a new pid").
				Wrap(err)
		}

		return false, fmt.Errorf("failed to look up process %d: %w", c.config.Pid, err)
	}

	outcome, err := c.toggler.Toggle(ctx, h)
	if err != nil {
		return true, err
	}

	log.Debugf("Toggle of process %d finished: %s", c.config.Pid, outcome)
	return true, nil
}

// shouldFire applies the decision table. Every match becomes the new
// baseline, fired or not.
func (c *Controller) shouldFire() bool {
	now := c.now()
	elapsed := now.Sub(c.lastMatch)
	c.lastMatch = now

	if !c.config.Twice {
		return true
	}

	return elapsed <= DoublePressWindow
}
