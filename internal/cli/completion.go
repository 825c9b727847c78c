package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgekit/imprint/internal/catalog"
	"github.com/forgekit/imprint/internal/ledger"
)

// resolveDocumentName completes document names from the embedded catalog.
func resolveDocumentName(toComplete string) ([]string, cobra.ShellCompDirective) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Filter based on toComplete prefix
	var completions []string
	for _, doc := range cat.Documents() {
		if strings.HasPrefix(doc.Name, toComplete) {
			completions = append(completions, formatCompletionLine(doc.Name, doc.Description))
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// resolveReceiptName completes document names that have a receipt in the
// project's ledger.
func resolveReceiptName(rootDir, toComplete string) ([]string, cobra.ShellCompDirective) {
	led, err := ledger.Load(filepath.Join(rootDir, ledger.DefaultFile))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Filter based on toComplete prefix
	var completions []string
	for name, rec := range led.Entries {
		if strings.HasPrefix(name, toComplete) {
			completions = append(completions, formatCompletionLine(name, rec.Path))
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// formatCompletionLine renders a "name<TAB>description" completion entry.
func formatCompletionLine(name, description string) string {
	if description == "" {
		return name
	}
	return name + "\t" + description
}
