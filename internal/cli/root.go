package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// NewRootCmd creates the top-level `imprint` command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "imprint",
		Short: "Imprint — stamps bundled Copilot instruction files into your project",
		Long: `imprint carries GitHub Copilot instruction documents inside its own binary
and writes them into a project's .github/ directory, byte for byte, in the
character encoding you ask for. Every write is recorded in .imprint.lock
so later runs can detect drift.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newListCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newEmitCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newRemoveCmd())

	return root
}

// Execute runs the root command.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
