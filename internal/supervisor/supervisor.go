// Package supervisor runs the key listener and watches the target process
// for as long as both are alive.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/safedep/dry/log"
	"golang.org/x/sync/errgroup"

	"github.com/sigtoggle/sigtoggle/internal/keyboard"
	"github.com/sigtoggle/sigtoggle/internal/process"
	"github.com/sigtoggle/sigtoggle/usefulerror"
)

// DefaultCheckInterval is how often the target is checked for liveness.
const DefaultCheckInterval = time.Second

type State int32

const (
	StateRunning State = iota + 1
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "idle"
	}
}

type Config struct {
	Pid           int
	CheckInterval time.Duration
}

func DefaultConfig(pid int) Config {
	return Config{Pid: pid, CheckInterval: DefaultCheckInterval}
}

type Supervisor struct {
	config  Config
	probe   process.Probe
	source  keyboard.Source
	handler keyboard.KeyHandler
	state   atomic.Int32
}

func New(config Config, probe process.Probe, source keyboard.Source, handler keyboard.KeyHandler) *Supervisor {
	if config.CheckInterval <= 0 {
		config.CheckInterval = DefaultCheckInterval
	}

	return &Supervisor{
		config:  config,
		probe:   probe,
		source:  source,
		handler: handler,
	}
}

func (s *Supervisor) State() State {
	return State(s.state.Load())
}

// Run blocks until the supervisor terminates. The caller must have checked
// that the target exists. It returns nil when ctx is cancelled, a
// ProcessNotFound error when the target disappears and a ListenerFailure
// error when the key listener stops on its own. The listener has returned
// by the time Run does.
func (s *Supervisor) Run(ctx context.Context) error {
	s.state.Store(int32(StateRunning))
	defer s.state.Store(int32(StateTerminated))

	log.Debugf("Supervising process %d every %s", s.config.Pid, s.config.CheckInterval)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := s.source.Listen(gctx, s.handler)

		switch {
		case ctx.Err() != nil:
			return nil
		case usefulerror.HasCode(err, usefulerror.ErrCodeProcessNotFound):
			return err
		case err == nil && gctx.Err() != nil:
			// Stopped because the watcher failed, its error wins.
			return nil
		default:
			return listenerFailure(err)
		}
	})

	g.Go(func() error {
		return s.watch(gctx)
	})

	err := g.Wait()
	if ctx.Err() != nil {
		log.Debugf("Supervisor interrupted")
		return nil
	}

	return err
}

func (s *Supervisor) watch(ctx context.Context) error {
	ticker := time.NewTicker(s.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			alive, err := process.Exists(s.probe, s.config.Pid)
			if err != nil {
				return fmt.Errorf("failed to check process %d: %w", s.config.Pid, err)
			}

			if !alive {
				log.Debugf("Process %d is gone", s.config.Pid)
				return ProcessGone(s.config.Pid)
			}
		}
	}
}

// ProcessGone is the error reported when the target no longer exists.
func ProcessGone(pid int) error {
	return usefulerror.Useful().
		WithCode(usefulerror.ErrCodeProcessNotFound).
		WithHumanError(fmt.Sprintf("Process %d no longer exists", pid)).
		WithHelp("Check the pid with 'ps -p <pid>' and restart sigtoggle").
		Wrap(fmt.Errorf("pid %d: %w", pid, process.ErrNotFound))
}

func listenerFailure(err error) error {
	if err == nil {
		err = errors.New("key listener exited")
	}

	help := "The key listener stopped unexpectedly, restart sigtoggle"
	if errors.Is(err, os.ErrPermission) {
		help = "Reading keyboards needs access to /dev/input, add your user to the 'input' group or run as root"
	} else if errors.Is(err, keyboard.ErrNoKeyboard) {
		help = "No keyboard device was found under /dev/input"
	} else if errors.Is(err, keyboard.ErrUnsupported) {
		help = "Global key listening is only available on Linux"
	}

	return usefulerror.Useful().
		WithCode(usefulerror.ErrCodeListenerFailure).
		WithHumanError(fmt.Sprintf("Key listener failed: %v", err)).
		WithHelp(help).
		Wrap(err)
}
