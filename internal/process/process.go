// Package process looks up a target process by pid and delivers the stop and
// continue control signals to it.
//
// Handles are snapshots. Every Find re-reads the OS process table, so a pid
// that was reused after the original process died is seen as whatever now
// owns that pid, never as the stale original.
package process

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no live process owns the pid.
	ErrNotFound = errors.New("process not found")

	// ErrInvalidPid is returned for pids that can never name a process.
	ErrInvalidPid = errors.New("invalid pid")

	// ErrUnsupported is returned on platforms without process control.
	ErrUnsupported = errors.New("process control is not supported on this platform")
)

// Signal is a process control signal.
type Signal int

const (
	SignalStop Signal = iota + 1
	SignalCont
)

func (s Signal) String() string {
	switch s {
	case SignalStop:
		return "STOP"
	case SignalCont:
		return "CONT"
	default:
		return fmt.Sprintf("Signal(%d)", int(s))
	}
}

// State is the scheduler state reported for a process.
type State int

const (
	StateUnknown State = iota
	StateRunning
	StateSleeping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateSleeping:
		return "sleeping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Handle is a point-in-time view of a live process.
type Handle struct {
	pid   int
	name  string
	state State
}

func NewHandle(pid int, name string, state State) *Handle {
	return &Handle{pid: pid, name: name, state: state}
}

func (h *Handle) Pid() int {
	return h.pid
}

// Name is the short command name, empty when the platform does not report it.
func (h *Handle) Name() string {
	return h.name
}

func (h *Handle) State() State {
	return h.state
}

// Stopped reports whether the process was stopped by a control signal when
// the handle was taken.
func (h *Handle) Stopped() bool {
	return h.state == StateStopped
}

// Probe finds processes by pid.
type Probe interface {
	// Find returns a fresh handle for pid, or an error matching ErrNotFound.
	Find(pid int) (*Handle, error)
}

// Exists reports whether pid names a live process. Errors other than
// ErrNotFound are returned as-is.
func Exists(p Probe, pid int) (bool, error) {
	_, err := p.Find(pid)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, ErrNotFound) {
		return false, nil
	}

	return false, err
}

func validatePid(pid int) error {
	if pid <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPid, pid)
	}

	return nil
}

func notFound(pid int, cause error) error {
	if cause == nil {
		return fmt.Errorf("pid %d: %w", pid, ErrNotFound)
	}

	return fmt.Errorf("pid %d: %w: %v", pid, ErrNotFound, cause)
}
