//go:build unix

package process

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

func (s Signal) sys() (syscall.Signal, error) {
	switch s {
	case SignalStop:
		return syscall.SIGSTOP, nil
	case SignalCont:
		return syscall.SIGCONT, nil
	default:
		return 0, fmt.Errorf("unsupported signal %s", s)
	}
}

// Send delivers sig to the process behind h. A process that exited after
// the handle was taken yields an error matching ErrNotFound.
func (h *Handle) Send(sig Signal) error {
	sysSig, err := sig.sys()
	if err != nil {
		return err
	}

	proc, err := os.FindProcess(h.pid)
	if err != nil {
		return notFound(h.pid, err)
	}

	if err := proc.Signal(sysSig); err != nil {
		if errors.Is(err, os.ErrProcessDone) || errors.Is(err, syscall.ESRCH) {
			return notFound(h.pid, err)
		}

		return fmt.Errorf("failed to send SIG%s to %d: %w", sig, h.pid, err)
	}

	return nil
}
