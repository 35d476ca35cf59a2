package run

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/sigtoggle/sigtoggle/config"
	"github.com/sigtoggle/sigtoggle/internal/chord"
	"github.com/sigtoggle/sigtoggle/internal/eventlog"
	"github.com/sigtoggle/sigtoggle/internal/feedback"
	"github.com/sigtoggle/sigtoggle/internal/flows"
	"github.com/sigtoggle/sigtoggle/internal/hooks"
	"github.com/sigtoggle/sigtoggle/internal/keyboard"
	"github.com/sigtoggle/sigtoggle/internal/process"
	"github.com/sigtoggle/sigtoggle/internal/supervisor"
	"github.com/sigtoggle/sigtoggle/internal/trigger"
	"github.com/sigtoggle/sigtoggle/internal/ui"
	"github.com/sigtoggle/sigtoggle/usefulerror"
)

// dependencies are the platform facing parts of a session.
type dependencies struct {
	newProbe      func() (process.Probe, error)
	newSource     func() (keyboard.Source, error)
	runner        hooks.Runner
	newPulser     func(quiet bool) feedback.Pulser
	checkInterval time.Duration
}

func defaultDependencies() dependencies {
	return dependencies{
		newProbe:  process.NewProbe,
		newSource: keyboard.NewSource,
		runner:    hooks.NewShellRunner(hooks.DefaultShellRunnerConfig()),
		newPulser: func(quiet bool) feedback.Pulser {
			return feedback.New(quiet, feedback.DefaultBellConfig())
		},
	}
}

// RunE implements `sigtoggle <pid>`.
func RunE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		ui.ErrorExit(err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, cfg, defaultDependencies()); err != nil {
		ui.ErrorExit(err)
	}

	return nil
}

func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}

	pid, err := parsePid(args[0])
	if err != nil {
		return config.Config{}, err
	}

	cfg.Pid = pid
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func parsePid(arg string) (int, error) {
	pid, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, usefulerror.Useful().
			WithCode(usefulerror.ErrCodeInvalidArgument).
			WithHumanError(fmt.Sprintf("Invalid pid: %q", arg)).
			WithHelp("The pid must be a positive integer, eg. sigtoggle $(pgrep -n firefox)").
			Wrap(err)
	}

	return pid, nil
}

// execute runs one session. It returns nil when ctx is cancelled.
func execute(ctx context.Context, cfg config.Config, deps dependencies) error {
	ch, err := cfg.Chord()
	if err != nil {
		return err
	}

	probe, err := deps.newProbe()
	if err != nil {
		return fmt.Errorf("failed to create process probe: %w", err)
	}

	target, err := probe.Find(cfg.Pid)
	if err != nil {
		if errors.Is(err, process.ErrNotFound) {
			return supervisor.ProcessGone(cfg.Pid)
		}

		return fmt.Errorf("failed to look up process %d: %w", cfg.Pid, err)
	}

	source, err := deps.newSource()
	if err != nil {
		return err
	}

	for _, k := range keyboard.Unreachable(ch) {
		ui.ShowWarning(fmt.Sprintf("No keyboard key produces %s, the trigger %s can never match", k, ch))
	}

	if cfg.EventLog != "" {
		if err := eventlog.InitializeWithFile(cfg.EventLog); err != nil {
			return fmt.Errorf("failed to open event log: %w", err)
		}

		defer eventlog.Close()
	}

	report := ui.NewReportData()
	report.Pid = cfg.Pid
	report.ProcessName = target.Name()
	report.Key = ch.String()
	report.Twice = cfg.Twice
	report.Quiet = cfg.Quiet
	report.HasHooks = cfg.HasHooks()
	report.TargetStopped = target.Stopped()

	flow := flows.NewToggleFlow(flows.ToggleFlowConfig{Hooks: cfg.Hooks}, deps.runner, deps.newPulser(cfg.Quiet),
		flows.ToggleInteraction{
			ShowWarning: func(message string) {
				report.Skips++
				ui.ShowWarning(message)
			},
			ShowToggled: func(h *process.Handle, outcome flows.Outcome) {
				report.RecordToggle(outcome == flows.OutcomeStopped)
				ui.ShowToggled(h.Pid(), h.Name(), outcome == flows.OutcomeStopped)
			},
		})

	controller := trigger.NewController(trigger.ControllerConfig{Pid: cfg.Pid, Twice: cfg.Twice}, probe, flow)
	handler := trigger.NewHandler(chord.NewMatcher(ch), controller)

	supervisorConfig := supervisor.DefaultConfig(cfg.Pid)
	if deps.checkInterval > 0 {
		supervisorConfig.CheckInterval = deps.checkInterval
	}

	printSummary(cfg, ch, target)
	eventlog.LogSessionStarted(cfg.Pid, target.Name(), ch.String(), cfg.Twice)
	log.Debugf("Session started for process %d with trigger %s", cfg.Pid, ch)

	err = supervisor.New(supervisorConfig, probe, source, handler).Run(ctx)

	switch {
	case err == nil:
		report.Outcome = ui.OutcomeInterrupted
		refreshTargetState(probe, report)
		eventlog.LogSessionEnded(cfg.Pid, "interrupted")
	case usefulerror.HasCode(err, usefulerror.ErrCodeProcessNotFound):
		report.Outcome = ui.OutcomeProcessGone
		eventlog.LogSessionEnded(cfg.Pid, "process gone")
	default:
		report.Outcome = ui.OutcomeError
		eventlog.LogError("Session failed", err)
		eventlog.LogSessionEnded(cfg.Pid, "error")
	}

	ui.Report(report)
	return err
}

// refreshTargetState re-reads the target so the report reflects signals sent
// by anyone, not only by this session.
func refreshTargetState(probe process.Probe, report *ui.ReportData) {
	h, err := probe.Find(report.Pid)
	if err != nil {
		log.Debugf("Could not re-read process %d state: %v", report.Pid, err)
		return
	}

	report.TargetStopped = h.Stopped()
}

func printSummary(cfg config.Config, ch chord.Chord, target *process.Handle) {
	mode := "single press"
	if cfg.Twice {
		mode = fmt.Sprintf("double press within %s", trigger.DoublePressWindow)
	}

	entries := [][2]string{
		{"Process", fmt.Sprintf("%d (%s, %s)", target.Pid(), target.Name(), target.State())},
		{"Trigger", ch.String()},
		{"Mode", mode},
		{"Feedback", map[bool]string{true: "quiet", false: "bell"}[cfg.Quiet]},
	}

	hookEntries := [][2]string{
		{"Before stop", cfg.BeforeStop},
		{"After stop", cfg.AfterStop},
		{"Before continue", cfg.BeforeCont},
		{"After continue", cfg.AfterCont},
	}

	for _, entry := range hookEntries {
		if entry[1] != "" {
			entries = append(entries, entry)
		}
	}

	if eventlog.IsInitialized() {
		entries = append(entries, [2]string{"Event log", cfg.EventLog})
	}

	ui.PrintInfoSection("sigtoggle", entries)
	ui.ShowInfo("Press Ctrl+C to exit")
}
