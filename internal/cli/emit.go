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

// newEmitCmd creates the `emit` command.
// Usage: imprint emit [name] [--to path] [--encoding name] [--root dir]
func newEmitCmd() *cobra.Command {
	var to string
	var encodingName string
	var rootDir string

	cmd := &cobra.Command{
		Use:   "emit [name]",
		Short: "Write bundled documents into the project",
		Long: `Writes a bundled instruction document to its .github/ location, replacing
whatever was there, and records a receipt in .imprint.lock.

With no arguments every bundled document is written to its default
location. With a name, only that document is written, and --to can point
it somewhere else.

Example:
  imprint emit copilot-instructions --encoding utf-8`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return resolveDocumentName(toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			if name == "" && to != "" {
				return fmt.Errorf("--to requires a document name")
			}
			return runEmit(cmd.OutOrStdout(), name, to, encodingName, rootDir)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Destination path relative to the project root (default: the document's .github/ location)")
	cmd.Flags().StringVar(&encodingName, "encoding", "utf-8", "Character encoding for the written file")
	cmd.Flags().StringVar(&rootDir, "root", ".", "Project root directory")

	return cmd
}

func runEmit(out io.Writer, name, to, encodingName, rootDir string) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	return runEmitWith(out, cat, &writer.OSFS{}, name, to, encodingName, rootDir)
}

// runEmitWith is the testable core of the emit command. An empty name means
// every bundled document.
func runEmitWith(out io.Writer, cat *catalog.Catalog, fs writer.FS, name, to, encodingName, rootDir string) error {
	canonical, err := writer.CanonicalEncoding(encodingName)
	if err != nil {
		return err
	}

	ledgerPath := filepath.Join(rootDir, ledger.DefaultFile)
	led, err := ledger.Load(ledgerPath)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}

	if name == "" {
		return emitAll(out, cat, led, fs, canonical, rootDir, ledgerPath)
	}

	doc, err := cat.Get(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "📦 Writing %s as %s...\n", doc.Name, canonical)

	dest, res, err := emitDocument(doc, to, canonical, rootDir, led, fs)
	if err != nil {
		return err
	}

	if err := led.Save(ledgerPath); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}

	fmt.Fprintf(out, "✅ %s → %s (%d characters)\n", doc.Name, dest, res.Chars)
	return nil
}

// emitAll writes every bundled document to its default destination.
func emitAll(out io.Writer, cat *catalog.Catalog, led *ledger.Ledger, fs writer.FS, encodingName, rootDir, ledgerPath string) error {
	docs := cat.Documents()
	if len(docs) == 0 {
		fmt.Fprintln(out, "📋 The bundle is empty — nothing to write.")
		return nil
	}

	fmt.Fprintf(out, "🔄 Writing %d document(s) as %s...\n\n", len(docs), encodingName)

	var failures []error
	for _, doc := range docs {
		dest, res, err := emitDocument(doc, "", encodingName, rootDir, led, fs)
		if err != nil {
			fmt.Fprintf(out, "  ❌ %s: %s\n", doc.Name, err)
			failures = append(failures, fmt.Errorf("%s: %w", doc.Name, err))
			continue
		}
		fmt.Fprintf(out, "  ✅ %s → %s (%d characters)\n", doc.Name, dest, res.Chars)
	}

	if err := led.Save(ledgerPath); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}

	fmt.Fprintln(out)
	if len(failures) > 0 {
		return fmt.Errorf("emit completed with %d error(s)", len(failures))
	}

	fmt.Fprintln(out, "✅ All documents written.")
	return nil
}

// emitDocument writes one document and records its receipt in led. The
// standard .github parent is created for default destinations; an explicit
// --to path is taken literally and fails if its parent is missing.
func emitDocument(doc catalog.Document, to, encodingName, rootDir string, led *ledger.Ledger, fs writer.FS) (string, writer.Result, error) {
	dest := to
	if dest == "" {
		dest = doc.Kind.TargetPath(doc.Name)
		if err := fs.MkdirAll(filepath.Join(rootDir, doc.Kind.TargetDir())); err != nil {
			return dest, writer.Result{}, &writer.FileSystemError{Path: dest, Err: err}
		}
	}

	absDest := filepath.Join(rootDir, dest)
	res, err := writer.Write(doc.Payload, absDest, encodingName)
	if err != nil {
		return dest, writer.Result{}, err
	}

	led.Set(doc.Name, dest, encodingName, res.Chars, res.Bytes, res.Checksum)
	return dest, res, nil
}
