package main

import (
	"os"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/sigtoggle/sigtoggle/cmd/keys"
	"github.com/sigtoggle/sigtoggle/cmd/run"
	"github.com/sigtoggle/sigtoggle/cmd/version"
	"github.com/sigtoggle/sigtoggle/config"
	"github.com/sigtoggle/sigtoggle/internal/ui"
)

var debug bool

func main() {
	cmd := &cobra.Command{
		Use:   "sigtoggle <pid>",
		Short: "Stop and continue a process with a global hotkey",
		Long: "sigtoggle listens for a key chord on every keyboard and toggles the target " +
			"process between stopped (SIGSTOP) and running (SIGCONT) each time it is pressed.",
		Example: "  sigtoggle $(pgrep -n firefox)\n" +
			"  sigtoggle --key ctrl+alt+p --twice 4242\n" +
			"  sigtoggle --before-stop 'notify-send pausing' 4242",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				os.Setenv("APP_LOG_LEVEL", "debug")
				ui.SetVerbosityLevel(ui.VerbosityLevelVerbose)
			}

			log.InitZapLogger("sigtoggle", "")
		},
		RunE: run.RunE,
	}

	cmd.PersistentFlags().BoolVar(&debug, config.FlagDebug, false, "Enable debug logging")
	config.ApplyCobraFlags(cmd)

	cmd.AddCommand(keys.NewKeysCommand())
	cmd.AddCommand(version.NewVersionCommand())

	if err := cmd.Execute(); err != nil {
		ui.ErrorExit(err)
	}
}
