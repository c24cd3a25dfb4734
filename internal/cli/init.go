package cli

import (
	"os"

	"github.com/spf13/cobra"

	"nsboot/internal/launcher"
	"nsboot/internal/modes"
)

// newInitCmd is the entrypoint the launcher re-executes inside the new
// namespaces. It takes its instructions from the readiness channel only.
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:                launcher.InitCommand,
		Short:              "Container entrypoint (internal)",
		Hidden:             true,
		DisableFlagParsing: true,
		// Overrides the root hook: no config file is read inside the
		// container.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(modes.RunInit())
		},
	}
}
