package ui

import (
	"fmt"
	"os"
	"strings"
)

// The UI is internal to sigtoggle and opinionated for the CLI.
// It is not intended to be used outside of sigtoggle.

type VerbosityLevel int

const (
	// Only errors and warnings are shown
	VerbosityLevelSilent VerbosityLevel = iota

	// Show a line per toggle and a one line summary on exit
	VerbosityLevelNormal

	// Show the full session report on exit
	VerbosityLevelVerbose
)

var verbosityLevel VerbosityLevel = VerbosityLevelNormal

func SetVerbosityLevel(level VerbosityLevel) {
	verbosityLevel = level
}

func ShowWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Colors.Yellow("⚠"), Colors.Yellow(message))
}

func ShowInfo(message string) {
	if verbosityLevel == VerbosityLevelSilent {
		return
	}

	fmt.Println(Colors.Dim(message))
}

// ShowToggled prints the status line for a delivered signal.
func ShowToggled(pid int, name string, stopped bool) {
	if verbosityLevel == VerbosityLevelSilent {
		return
	}

	target := fmt.Sprintf("%d", pid)
	if name != "" {
		target = fmt.Sprintf("%d (%s)", pid, name)
	}

	if stopped {
		fmt.Printf("%s %s %s\n", Colors.Yellow("⏸"), Colors.Yellow("Stopped"), target)
		return
	}

	fmt.Printf("%s %s %s\n", Colors.Green("▶"), Colors.Green("Continued"), target)
}

// Fatalf prints the message and exits with a non-zero status code.
func Fatalf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, Colors.Red(fmt.Sprintf(format, args...)))
	os.Exit(1)
}

// termWidthFormatText re-flows text into lines of at most maxWidth columns.
// Words longer than maxWidth get a line of their own.
func termWidthFormatText(text string, maxWidth int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var (
		lines []string
		line  strings.Builder
	)

	for _, word := range words {
		if line.Len() > 0 && line.Len()+1+len(word) > maxWidth {
			lines = append(lines, line.String())
			line.Reset()
		}

		if line.Len() > 0 {
			line.WriteString(" ")
		}

		line.WriteString(word)
	}

	lines = append(lines, line.String())
	return strings.Join(lines, "\n")
}
