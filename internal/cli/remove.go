package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/forgekit/imprint/internal/ledger"
)

// newRemoveCmd creates the `remove` command.
// Usage: imprint remove <name>
func newRemoveCmd() *cobra.Command {
	var rootDir string

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete an emitted document and its receipt",
		Long: `Deletes the file a previous emit wrote and removes its receipt from
.imprint.lock. The bundled document itself is untouched and can be
emitted again later.

Example:
  imprint remove copilot-instructions`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return resolveReceiptName(rootDir, toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoveWith(cmd.OutOrStdout(), args[0], rootDir)
		},
	}

	cmd.Flags().StringVar(&rootDir, "root", ".", "Project root directory")

	return cmd
}

// runRemoveWith is the testable core of the remove command.
func runRemoveWith(out io.Writer, name, rootDir string) error {
	ledgerPath := filepath.Join(rootDir, ledger.DefaultFile)

	led, err := ledger.Load(ledgerPath)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}

	rec, ok := led.Get(name)
	if !ok {
		return fmt.Errorf("%s has no receipt in %s", name, ledger.DefaultFile)
	}

	// Delete the emitted file from disk. A file that is already gone still
	// gets its receipt dropped.
	target := filepath.Join(rootDir, rec.Path)
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting %s: %w", rec.Path, err)
	}

	led.Remove(name)

	if err := led.Save(ledgerPath); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}

	fmt.Fprintf(out, "🗑️  Deleted %s\n", rec.Path)
	fmt.Fprintf(out, "🧹 Removed receipt for %s\n", name)
	return nil
}
