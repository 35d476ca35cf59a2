package config

import "github.com/spf13/cobra"

const (
	FlagKey        = "key"
	FlagTwice      = "twice"
	FlagQuiet      = "quiet"
	FlagBeforeStop = "before-stop"
	FlagAfterStop  = "after-stop"
	FlagBeforeCont = "before-cont"
	FlagAfterCont  = "after-cont"
	FlagDebug      = "debug"
	FlagEventLog   = "event-log"
	FlagConfig     = "config"
)

// ApplyCobraFlags applies the toggle flags to the command. The values are
// read back through Load, not through package state.
func ApplyCobraFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP(FlagKey, "k", DefaultKey, "Trigger key chord, eg. f12 or ctrl+alt+p")
	flags.BoolP(FlagTwice, "2", false, "Require the chord twice within 0.4s to toggle")
	flags.BoolP(FlagQuiet, "q", false, "Disable the audible feedback")

	flags.String(FlagBeforeStop, "", "Shell command run before stopping; nonzero exit skips the stop")
	flags.String(FlagAfterStop, "", "Shell command run after stopping")
	flags.String(FlagBeforeCont, "", "Shell command run before continuing; nonzero exit skips the continue")
	flags.String(FlagAfterCont, "", "Shell command run after continuing")

	flags.String(FlagEventLog, "", "Append a JSON line per toggle to this file")
	flags.String(FlagConfig, "", "YAML file with defaults for the flags above")
}
