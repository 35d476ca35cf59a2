package version

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigtoggle/sigtoggle/internal/ui"
	"github.com/sigtoggle/sigtoggle/internal/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(os.Stdout, ui.GenerateBanner(version.Version, version.Commit))
			fmt.Fprintf(os.Stdout, "Version: %s\n", version.Version)
			fmt.Fprintf(os.Stdout, "CommitSHA: %s\n", version.Commit)

			return nil
		},
	}
}
