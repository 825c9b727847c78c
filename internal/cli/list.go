package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/forgekit/imprint/internal/catalog"
)

// newListCmd creates the `list` command.
// Usage: imprint list
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the documents bundled into this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout())
		},
	}
}

func runList(out io.Writer) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	return runListWith(out, cat)
}

// runListWith is the testable core of the list command.
func runListWith(out io.Writer, cat *catalog.Catalog) error {
	docs := cat.Documents()
	if len(docs) == 0 {
		fmt.Fprintln(out, "📋 The bundle is empty.")
		return nil
	}

	fmt.Fprintf(out, "📚 %d bundled document(s):\n\n", len(docs))
	for _, doc := range docs {
		fmt.Fprintf(out, "  📄 %s → %s (%d characters)\n", doc.Name, doc.Kind.TargetPath(doc.Name), doc.CharCount())
		if doc.Description != "" {
			fmt.Fprintf(out, "     %s\n", doc.Description)
		}
	}
	return nil
}
