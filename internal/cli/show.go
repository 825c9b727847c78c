package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/forgekit/imprint/internal/catalog"
)

// newShowCmd creates the `show` command.
// Usage: imprint show <name>
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a bundled document to stdout",
		Long: `Prints the exact payload of a bundled document, byte for byte, without
writing anything to disk.`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return resolveDocumentName(toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), args[0])
		},
	}
}

func runShow(out io.Writer, name string) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	return runShowWith(out, cat, name)
}

// runShowWith is the testable core of the show command.
func runShowWith(out io.Writer, cat *catalog.Catalog, name string) error {
	doc, err := cat.Get(name)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, doc.Payload)
	return err
}
