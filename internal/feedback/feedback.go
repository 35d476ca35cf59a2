// Package feedback produces the short audible cue that confirms a toggle.
package feedback

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/safedep/dry/log"
)

const (
	// PulsesStop and PulsesCont are the cue lengths for each direction.
	PulsesStop = 1
	PulsesCont = 2

	DefaultSpacing = 100 * time.Millisecond
)

// Pulser emits a number of short audible pulses.
type Pulser interface {
	Pulse(count int) error
}

type BellConfig struct {
	// Writer receives one BEL character per pulse. It should be the
	// controlling terminal.
	Writer io.Writer

	// Spacing is the gap between consecutive pulses.
	Spacing time.Duration
}

func DefaultBellConfig() BellConfig {
	return BellConfig{
		Writer:  os.Stdout,
		Spacing: DefaultSpacing,
	}
}

// Bell rings the terminal bell.
type Bell struct {
	config BellConfig
	sleep  func(time.Duration)
}

var _ Pulser = (*Bell)(nil)

func NewBell(config BellConfig) *Bell {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}

	return &Bell{config: config, sleep: time.Sleep}
}

func (b *Bell) Pulse(count int) error {
	for i := 0; i < count; i++ {
		if i > 0 {
			b.sleep(b.config.Spacing)
		}

		if _, err := io.WriteString(b.config.Writer, "\a"); err != nil {
			return fmt.Errorf("failed to ring bell: %w", err)
		}
	}

	log.Debugf("Emitted %d feedback pulse(s)", count)
	return nil
}

// Silent is used in quiet mode.
type Silent struct{}

var _ Pulser = Silent{}

func (Silent) Pulse(int) error {
	return nil
}

// New returns the pulser for the given quiet setting.
func New(quiet bool, config BellConfig) Pulser {
	if quiet {
		return Silent{}
	}

	return NewBell(config)
}
