package catalog

import "path/filepath"

// Kind describes where a bundled document lands inside .github/.
type Kind string

const (
	// KindRepo targets the repository-wide instructions file. GitHub reads
	// it from a fixed path, so the document name never appears in it.
	KindRepo Kind = "repo"

	// KindScoped targets a named file under .github/instructions/.
	KindScoped Kind = "scoped"
)

// ValidKinds returns all supported document kinds.
func ValidKinds() []Kind {
	return []Kind{KindRepo, KindScoped}
}

// IsValid checks whether the kind is one of the known kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindRepo, KindScoped:
		return true
	}
	return false
}

// TargetDir returns the directory a document of this kind lives in,
// relative to the project root.
func (k Kind) TargetDir() string {
	if k == KindScoped {
		return filepath.Join(".github", "instructions")
	}
	return ".github"
}

// TargetPath returns the full relative path for a named document.
func (k Kind) TargetPath(name string) string {
	if k == KindScoped {
		return filepath.Join(k.TargetDir(), name+".instructions.md")
	}
	return filepath.Join(k.TargetDir(), "copilot-instructions.md")
}
