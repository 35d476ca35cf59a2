package flows

import (
	"context"
	"errors"
	"fmt"

	"github.com/safedep/dry/log"

	"github.com/sigtoggle/sigtoggle/config"
	"github.com/sigtoggle/sigtoggle/internal/eventlog"
	"github.com/sigtoggle/sigtoggle/internal/feedback"
	"github.com/sigtoggle/sigtoggle/internal/hooks"
	"github.com/sigtoggle/sigtoggle/internal/process"
	"github.com/sigtoggle/sigtoggle/usefulerror"
)

// ToggleInteraction lets the flow talk to the user without depending on the
// terminal UI.
type ToggleInteraction struct {
	// ShowWarning is called with a human readable notice, eg. when a before
	// hook vetoes a toggle.
	ShowWarning func(message string)

	// ShowToggled is called after a signal was delivered.
	ShowToggled func(h *process.Handle, outcome Outcome)
}

type ToggleFlowConfig struct {
	Hooks config.Hooks
}

// ToggleFlow flips a process between stopped and running, with the
// configured hooks around the signal and audible feedback after it.
type ToggleFlow struct {
	config      ToggleFlowConfig
	runner      hooks.Runner
	pulser      feedback.Pulser
	interaction ToggleInteraction

	// send delivers the signal. Replaced in tests.
	send func(*process.Handle, process.Signal) error
}

func NewToggleFlow(config ToggleFlowConfig, runner hooks.Runner,
	pulser feedback.Pulser, interaction ToggleInteraction) *ToggleFlow {
	if interaction.ShowWarning == nil {
		interaction.ShowWarning = func(string) {}
	}

	if interaction.ShowToggled == nil {
		interaction.ShowToggled = func(*process.Handle, Outcome) {}
	}

	return &ToggleFlow{
		config:      config,
		runner:      runner,
		pulser:      pulser,
		interaction: interaction,
		send:        (*process.Handle).Send,
	}
}

// Toggle stops a running process or continues a stopped one. The call is
// synchronous: hooks, signal and feedback have all completed when it
// returns. A vetoed toggle is reported as OutcomeSkipped with a nil error.
// Errors are only returned when the signal could not be delivered.
func (f *ToggleFlow) Toggle(ctx context.Context, h *process.Handle) (Outcome, error) {
	sig := inferSignal(h)
	before, after := f.hooksFor(sig)

	log.Debugf("Toggling process %d (%s, %s) with SIG%s", h.Pid(), h.Name(), h.State(), sig)

	if before != "" {
		status, err := f.runner.Run(ctx, before)
		if err != nil || status != 0 {
			f.skip(h, sig, before, status, err)
			return OutcomeSkipped, nil
		}
	}

	if err := f.send(h, sig); err != nil {
		eventlog.LogError(fmt.Sprintf("Failed to send SIG%s to %d", sig, h.Pid()), err)
		return 0, signalError(h, sig, err)
	}

	outcome := outcomeFor(sig)
	switch outcome {
	case OutcomeStopped:
		eventlog.LogProcessStopped(h.Pid(), h.Name())
	case OutcomeContinued:
		eventlog.LogProcessContinued(h.Pid(), h.Name())
	}

	if after != "" {
		// After hooks are informational, their status never changes the outcome.
		status, err := f.runner.Run(ctx, after)
		if err != nil {
			log.Warnf("After hook failed to start: %v", err)
		} else if status != 0 {
			log.Warnf("After hook exited with status %d: %s", status, after)
		}
	}

	f.interaction.ShowToggled(h, outcome)

	if err := f.pulser.Pulse(pulsesFor(sig)); err != nil {
		log.Warnf("Failed to emit feedback: %v", err)
	}

	return outcome, nil
}

func (f *ToggleFlow) hooksFor(sig process.Signal) (before, after string) {
	if sig == process.SignalCont {
		return f.config.Hooks.BeforeCont, f.config.Hooks.AfterCont
	}

	return f.config.Hooks.BeforeStop, f.config.Hooks.AfterStop
}

func (f *ToggleFlow) skip(h *process.Handle, sig process.Signal, hook string, status int, runErr error) {
	humanError := fmt.Sprintf("Skipped SIG%s for process %d: before hook exited with status %d", sig, h.Pid(), status)
	if runErr != nil {
		humanError = fmt.Sprintf("Skipped SIG%s for process %d: before hook could not be started", sig, h.Pid())
	}

	notice := usefulerror.Useful().
		WithCode(usefulerror.ErrCodeHookSkip).
		WithHumanError(humanError).
		WithHelp("The before hook must exit with status 0 for the signal to be sent").
		Wrap(runErr).
		Msg(fmt.Sprintf("before hook %q vetoed SIG%s", hook, sig))

	log.Infof("%s", notice.Error())
	eventlog.LogToggleSkipped(h.Pid(), h.Name(), sig.String(), hook, status)

	f.interaction.ShowWarning(notice.HumanError())
}

func pulsesFor(sig process.Signal) int {
	if sig == process.SignalCont {
		return feedback.PulsesCont
	}

	return feedback.PulsesStop
}

func signalError(h *process.Handle, sig process.Signal, err error) error {
	if errors.Is(err, process.ErrNotFound) {
		return usefulerror.Useful().
			WithCode(usefulerror.ErrCodeProcessNotFound).
			WithHumanError(fmt.Sprintf("Process %d no longer exists", h.Pid())).
			WithHelp("The target exited before it could be toggled").
			Wrap(err)
	}

	return fmt.Errorf("failed to send SIG%s to process %d: %w", sig, h.Pid(), err)
}
