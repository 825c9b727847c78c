package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/forgekit/imprint/internal/catalog"
	"github.com/forgekit/imprint/internal/ledger"
	"github.com/forgekit/imprint/internal/writer"
)

// newCheckCmd creates the `check` command.
// Usage: imprint check [--strict]
func newCheckCmd() *cobra.Command {
	var strict bool
	var rootDir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether emitted documents still match the bundle",
		Long: `Compares every bundled document against its file on disk and the
.imprint.lock receipts. Useful in CI/CD pipelines.

With --strict, the command exits with a non-zero code if any document is
missing, drifted, or otherwise out of step.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), rootDir, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with error code if documents are stale or missing")
	cmd.Flags().StringVar(&rootDir, "root", ".", "Project root directory")

	return cmd
}

func runCheck(out io.Writer, rootDir string, strict bool) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	led, err := ledger.Load(filepath.Join(rootDir, ledger.DefaultFile))
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}
	return runCheckWith(out, cat, led, &writer.OSFS{}, rootDir, strict)
}

// runCheckWith is the testable core of the check command.
func runCheckWith(out io.Writer, cat *catalog.Catalog, led *ledger.Ledger, fs writer.FS, rootDir string, strict bool) error {
	docs := cat.Documents()
	if len(docs) == 0 {
		fmt.Fprintln(out, "📋 The bundle is empty — nothing to check.")
		return nil
	}

	results := CheckDocuments(docs, led, fs, rootDir)

	fmt.Fprintf(out, "🔍 Checking %d document(s)...\n\n", len(results))

	var issues int
	for _, r := range results {
		switch r.Status {
		case CheckOK:
			fmt.Fprintf(out, "  ✅ %s — ok\n", r.Name)
		case CheckNeverEmitted:
			fmt.Fprintf(out, "  ❌ %s — missing (never emitted)\n", r.Name)
			issues++
		case CheckMissing:
			fmt.Fprintf(out, "  ❌ %s — missing (was emitted to %s)\n", r.Name, r.Path)
			issues++
		case CheckUntracked:
			fmt.Fprintf(out, "  ⚠️  %s — file exists but has no receipt (run 'imprint emit %s')\n", r.Name, r.Name)
			issues++
		case CheckDrifted:
			fmt.Fprintf(out, "  ⚠️  %s — content drifted from the bundled document\n", r.Name)
			issues++
		case CheckOutdated:
			fmt.Fprintf(out, "  ⚠️  %s — bundle changed since the last emit\n", r.Name)
			issues++
		case CheckFailed:
			fmt.Fprintf(out, "  ❌ %s — check failed: %s\n", r.Name, r.Err)
			issues++
		}
	}

	fmt.Fprintln(out)
	if issues > 0 {
		msg := fmt.Sprintf("Found %d issue(s). Run 'imprint emit' to fix.", issues)
		if strict {
			return fmt.Errorf("%s", msg)
		}
		fmt.Fprintf(out, "⚠️  %s\n", msg)
	} else {
		fmt.Fprintln(out, "✅ All documents are in place.")
	}
	return nil
}
