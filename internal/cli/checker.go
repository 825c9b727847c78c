package cli

import (
	"path/filepath"

	"github.com/forgekit/imprint/internal/catalog"
	"github.com/forgekit/imprint/internal/ledger"
	"github.com/forgekit/imprint/internal/writer"
)

// CheckStatus describes the drift status of a single bundled document.
type CheckStatus int

const (
	CheckOK           CheckStatus = iota // file matches the bundled payload
	CheckNeverEmitted                    // no receipt, no file on disk
	CheckMissing                         // receipt exists but file deleted
	CheckUntracked                       // file exists but no receipt
	CheckDrifted                         // file matches neither bundle nor receipt
	CheckOutdated                        // file matches its receipt, but the bundle moved on
	CheckFailed                          // file or receipt could not be examined
)

// CheckResult holds the outcome of checking one document.
type CheckResult struct {
	Name   string
	Path   string // path that was examined, relative to the project root
	Status CheckStatus
	Err    error // set only for CheckFailed
}

// CheckDocuments compares every bundled document against the ledger and the
// filesystem. This is a pure function: it reads state through its arguments,
// not globals.
func CheckDocuments(docs []catalog.Document, led *ledger.Ledger, fs writer.FS, rootDir string) []CheckResult {
	results := make([]CheckResult, 0, len(docs))

	for _, doc := range docs {
		rec, tracked := led.Get(doc.Name)

		path := doc.Kind.TargetPath(doc.Name)
		if tracked {
			path = rec.Path
		}
		fileExists := fs.Exists(filepath.Join(rootDir, path))

		result := CheckResult{Name: doc.Name, Path: path}
		switch {
		case !fileExists && !tracked:
			result.Status = CheckNeverEmitted
		case !fileExists && tracked:
			result.Status = CheckMissing
		case fileExists && !tracked:
			result.Status = CheckUntracked
		default:
			result.Status, result.Err = compareContent(doc, rec, fs, filepath.Join(rootDir, path))
		}

		results = append(results, result)
	}

	return results
}

// compareContent classifies a file that exists and has a receipt. The
// bundled payload is encoded with the receipt's encoding and compared to
// the file bytes by checksum.
func compareContent(doc catalog.Document, rec ledger.Receipt, fs writer.FS, absPath string) (CheckStatus, error) {
	want, err := writer.Encode(doc.Payload, rec.Encoding)
	if err != nil {
		return CheckFailed, err
	}
	data, err := fs.ReadFile(absPath)
	if err != nil {
		return CheckFailed, err
	}

	switch sum := writer.Checksum(data); {
	case sum == writer.Checksum(want):
		return CheckOK, nil
	case sum == rec.Checksum:
		return CheckOutdated, nil
	}
	return CheckDrifted, nil
}
