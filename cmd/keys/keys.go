package keys

import (
	"github.com/spf13/cobra"

	"github.com/sigtoggle/sigtoggle/internal/chord"
	"github.com/sigtoggle/sigtoggle/internal/ui"
)

func NewKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the key names accepted by --key",
		Long: "List the special key names accepted by --key. Any other single " +
			"printable character is accepted as a literal key.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.PrintTable([]string{"Name", "Key", "Alias"}, keyRows())
			return nil
		},
	}
}

func keyRows() [][]string {
	entries := chord.Names()
	rows := make([][]string, 0, len(entries))

	for _, entry := range entries {
		alias := ""
		if entry.Alias {
			alias = "yes"
		}

		rows = append(rows, []string{entry.Name, entry.Canonical, alias})
	}

	return rows
}
