package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const DefaultFile = ".imprint.lock"

// Ledger is the shadow record of every document imprint has written into a
// project. It stores the observed state of each emission so that
// `imprint check` can detect drift.
type Ledger struct {
	// Version of the ledger format.
	Version int `json:"version"`
	// Entries keyed by document name.
	Entries map[string]Receipt `json:"entries"`
}

// Receipt records the observed state of a single emitted document.
type Receipt struct {
	Name      string `json:"name"`
	Path      string `json:"path"`       // destination relative to the project root
	Encoding  string `json:"encoding"`   // canonical encoding label used for the write
	Chars     int    `json:"chars"`      // characters in the payload
	Bytes     int    `json:"bytes"`      // encoded bytes written to disk
	Checksum  string `json:"checksum"`   // SHA-256 of the written bytes
	EmittedAt string `json:"emitted_at"` // RFC 3339 timestamp of the last write
}

// New returns an initialised empty ledger.
func New() *Ledger {
	return &Ledger{
		Version: 1,
		Entries: make(map[string]Receipt),
	}
}

// Load reads and parses a .imprint.lock file.
// Returns an empty ledger if the file does not exist.
func Load(path string) (*Ledger, error) {
	led := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return led, nil
		}
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	if err := json.Unmarshal(data, led); err != nil {
		return nil, fmt.Errorf("parsing ledger: %w", err)
	}

	if led.Entries == nil {
		led.Entries = make(map[string]Receipt)
	}

	return led, nil
}

// Save writes the ledger to the given path.
func (l *Ledger) Save(path string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	return nil
}

// Set records or updates a receipt after a successful write.
func (l *Ledger) Set(name, path, encoding string, chars, bytes int, checksum string) {
	l.Entries[name] = Receipt{
		Name:      name,
		Path:      path,
		Encoding:  encoding,
		Chars:     chars,
		Bytes:     bytes,
		Checksum:  checksum,
		EmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Get retrieves a receipt, if it exists.
func (l *Ledger) Get(name string) (Receipt, bool) {
	r, ok := l.Entries[name]
	return r, ok
}

// Remove deletes a receipt.
func (l *Ledger) Remove(name string) {
	delete(l.Entries, name)
}
