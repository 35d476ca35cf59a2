//go:build linux

package process

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/prometheus/procfs"
)

type procfsProbe struct {
	fs procfs.FS
}

var _ Probe = (*procfsProbe)(nil)

// NewProbe returns the probe for the running platform.
func NewProbe() (Probe, error) {
	return NewProcfsProbe(procfs.DefaultMountPoint)
}

// NewProcfsProbe reads process state from a procfs mount.
func NewProcfsProbe(mountPoint string) (Probe, error) {
	procFS, err := procfs.NewFS(mountPoint)
	if err != nil {
		return nil, fmt.Errorf("failed to open procfs at %s: %w", mountPoint, err)
	}

	return &procfsProbe{fs: procFS}, nil
}

func (p *procfsProbe) Find(pid int) (*Handle, error) {
	if err := validatePid(pid); err != nil {
		return nil, err
	}

	proc, err := p.fs.Proc(pid)
	if err != nil {
		return nil, classifyProcfsError(pid, err)
	}

	// The process can exit between the lookup and reading its stat file.
	stat, err := proc.Stat()
	if err != nil {
		return nil, classifyProcfsError(pid, err)
	}

	switch stat.State {
	case "Z", "X", "x":
		return nil, notFound(pid, fmt.Errorf("process is %s", stat.State))
	}

	return NewHandle(pid, stat.Comm, stateFromProcfs(stat.State)), nil
}

func classifyProcfsError(pid int, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return notFound(pid, nil)
	}

	return fmt.Errorf("failed to read process %d: %w", pid, err)
}

func stateFromProcfs(code string) State {
	switch code {
	case "R":
		return StateRunning
	case "S", "D", "I", "W", "P":
		return StateSleeping
	case "T":
		return StateStopped
	default:
		return StateUnknown
	}
}
