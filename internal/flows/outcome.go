package flows

import "github.com/sigtoggle/sigtoggle/internal/process"

// Outcome is the result of a single toggle.
type Outcome int

const (
	OutcomeStopped Outcome = iota + 1
	OutcomeContinued

	// OutcomeSkipped means a before hook vetoed the signal. Nothing was
	// sent and no after hook ran.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStopped:
		return "stopped"
	case OutcomeContinued:
		return "continued"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// inferSignal picks the direction of a toggle from the observed run state.
// Only a process stopped by a control signal is continued; every other state,
// including one we could not classify, is stopped.
func inferSignal(h *process.Handle) process.Signal {
	if h.Stopped() {
		return process.SignalCont
	}

	return process.SignalStop
}

func outcomeFor(sig process.Signal) Outcome {
	if sig == process.SignalCont {
		return OutcomeContinued
	}

	return OutcomeStopped
}
