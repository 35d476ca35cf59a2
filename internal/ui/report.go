package ui

import (
	"fmt"
	"time"
)

// SessionOutcome is how a sigtoggle session ended
type SessionOutcome int

const (
	OutcomeInterrupted SessionOutcome = iota
	OutcomeProcessGone
	OutcomeError
)

func (o SessionOutcome) String() string {
	switch o {
	case OutcomeInterrupted:
		return "interrupted"
	case OutcomeProcessGone:
		return "process_gone"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// ReportData captures session statistics for the exit report.
// This is a pure data model with no rendering logic.
type ReportData struct {
	// Session metadata
	Pid         int
	ProcessName string
	Key         string
	StartTime   time.Time
	Duration    time.Duration

	// Toggle statistics
	Stops     int
	Continues int
	Skips     int

	// TargetStopped is the target state as last seen: at startup, after
	// each delivered signal and when the session ends.
	TargetStopped bool

	// Configuration context
	Twice    bool
	Quiet    bool
	HasHooks bool

	// Outcome
	Outcome SessionOutcome
}

// NewReportData creates a new ReportData with sensible defaults
func NewReportData() *ReportData {
	return &ReportData{
		StartTime: time.Now(),
		Outcome:   OutcomeInterrupted,
	}
}

// Finalize sets the duration based on start time
func (r *ReportData) Finalize() {
	r.Duration = time.Since(r.StartTime)
}

// Toggles is the number of signals delivered
func (r *ReportData) Toggles() int {
	return r.Stops + r.Continues
}

// RecordToggle counts a delivered signal and tracks the resulting state.
func (r *ReportData) RecordToggle(stopped bool) {
	if stopped {
		r.Stops++
	} else {
		r.Continues++
	}

	r.TargetStopped = stopped
}

// LeftStopped reports whether the target was stopped when last seen. The
// operator should know before walking away from a frozen process.
func (r *ReportData) LeftStopped() bool {
	return r.TargetStopped
}

// Report renders the exit report based on verbosity level.
func Report(data *ReportData) {
	data.Finalize()

	switch verbosityLevel {
	case VerbosityLevelSilent:
		return
	case VerbosityLevelNormal:
		reportNormal(data)
	case VerbosityLevelVerbose:
		reportVerbose(data)
	}
}

func reportNormal(data *ReportData) {
	if data.Outcome == OutcomeError {
		return // Error handling done elsewhere
	}

	message := fmt.Sprintf("sigtoggle: %d toggles in %s", data.Toggles(), formatDuration(data.Duration))
	if data.Skips > 0 {
		message = fmt.Sprintf("%s (%d skipped by hooks)", message, data.Skips)
	}

	fmt.Printf("%s %s\n", Colors.Green("✓"), Colors.Dim(message))

	if data.LeftStopped() && data.Outcome == OutcomeInterrupted {
		ShowWarning(fmt.Sprintf("Process %d is still stopped, resume it with 'kill -CONT %d'", data.Pid, data.Pid))
	}
}

func reportVerbose(data *ReportData) {
	fmt.Println()
	fmt.Println(Colors.Cyan("sigtoggle Session Report"))
	fmt.Println(Colors.Normal("────────────────────────────────────────"))

	printOutcomeLine(data)

	fmt.Println()
	fmt.Printf("  %s %d (%s)\n", Colors.Bold("Target:"), data.Pid, data.ProcessName)
	fmt.Printf("  %s %s over %s\n", Colors.Bold("Toggles:"),
		fmt.Sprintf("%d stopped, %d continued, %d skipped", data.Stops, data.Continues, data.Skips),
		formatDuration(data.Duration))

	fmt.Println()
	fmt.Printf("  %s %s | twice: %s | quiet: %s | hooks: %s\n",
		Colors.Bold("Config:"),
		data.Key,
		boolToOnOff(data.Twice),
		boolToOnOff(data.Quiet),
		boolToOnOff(data.HasHooks))

	if data.LeftStopped() && data.Outcome == OutcomeInterrupted {
		fmt.Println()
		ShowWarning(fmt.Sprintf("Process %d is still stopped, resume it with 'kill -CONT %d'", data.Pid, data.Pid))
	}

	fmt.Println()
}

func printOutcomeLine(data *ReportData) {
	switch data.Outcome {
	case OutcomeInterrupted:
		fmt.Printf("  %s %s\n", Colors.Green("✓"), Colors.Green("Session ended by interrupt"))
	case OutcomeProcessGone:
		fmt.Printf("  %s %s\n", Colors.Yellow("✗"), Colors.Yellow("Target process exited"))
	case OutcomeError:
		fmt.Printf("  %s %s\n", Colors.Red("✗"), Colors.Red("Session failed with error"))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func boolToOnOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
