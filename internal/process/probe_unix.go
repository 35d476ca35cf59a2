//go:build unix && !linux

package process

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// psProbe checks existence with kill(pid, 0) and reads state and name from
// ps(1), which is the portable interface on BSD and macOS.
type psProbe struct{}

var _ Probe = psProbe{}

// NewProbe returns the probe for the running platform.
func NewProbe() (Probe, error) {
	return psProbe{}, nil
}

func (psProbe) Find(pid int) (*Handle, error) {
	if err := validatePid(pid); err != nil {
		return nil, err
	}

	// EPERM means the process exists but belongs to someone else.
	if err := unix.Kill(pid, 0); err != nil && !errors.Is(err, unix.EPERM) {
		if errors.Is(err, unix.ESRCH) {
			return nil, notFound(pid, nil)
		}

		return nil, fmt.Errorf("failed to probe process %d: %w", pid, err)
	}

	var stdout bytes.Buffer
	cmd := exec.Command("ps", "-o", "stat=,comm=", "-p", strconv.Itoa(pid))
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		// ps exits 1 when the pid vanished in between
		return nil, notFound(pid, err)
	}

	fields := strings.Fields(stdout.String())
	if len(fields) == 0 {
		return nil, notFound(pid, nil)
	}

	stat := fields[0]
	if strings.HasPrefix(stat, "Z") {
		return nil, notFound(pid, fmt.Errorf("process is a zombie"))
	}

	name := ""
	if len(fields) > 1 {
		name = strings.Join(fields[1:], " ")
	}

	return NewHandle(pid, name, stateFromPs(stat)), nil
}

func stateFromPs(stat string) State {
	switch stat[0] {
	case 'R':
		return StateRunning
	case 'S', 'I', 'D', 'U':
		return StateSleeping
	case 'T':
		return StateStopped
	default:
		return StateUnknown
	}
}
