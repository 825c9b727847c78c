package catalog

import (
	"embed"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/forgekit/imprint/internal/writer"
)

// The index and the documents it names are compiled into the binary, so a
// release always carries exactly the content it will write.
//
//go:embed catalog.toml
var embeddedIndex []byte

//go:embed docs
var embeddedDocs embed.FS

// Catalog is the set of instruction documents bundled into the binary.
type Catalog struct {
	docs map[string]Document
}

// Document is a single bundled instruction document.
type Document struct {
	Name        string
	Description string
	Kind        Kind
	Payload     string
}

// index mirrors the TOML layout of catalog.toml.
type index struct {
	Documents map[string]indexEntry `toml:"documents"`
}

type indexEntry struct {
	Description string `toml:"description"`
	File        string `toml:"file"`
	Kind        string `toml:"kind"`
}

// Load parses the embedded index and resolves every document payload.
func Load() (*Catalog, error) {
	return build(embeddedIndex, func(file string) ([]byte, error) {
		return embeddedDocs.ReadFile("docs/" + file)
	})
}

// build assembles a catalog from raw index bytes and a payload reader.
// Split out from Load so tests can supply their own bundles.
func build(rawIndex []byte, readFile func(string) ([]byte, error)) (*Catalog, error) {
	var idx index
	if err := toml.Unmarshal(rawIndex, &idx); err != nil {
		return nil, fmt.Errorf("parsing catalog index: %w", err)
	}

	docs := make([]Document, 0, len(idx.Documents))
	for name, entry := range idx.Documents {
		kind := Kind(entry.Kind)
		if !kind.IsValid() {
			return nil, fmt.Errorf("document %s: unknown kind %q", name, entry.Kind)
		}
		payload, err := readFile(entry.File)
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", name, err)
		}
		if len(payload) == 0 {
			return nil, fmt.Errorf("document %s: payload file %s is empty", name, entry.File)
		}
		if !utf8.Valid(payload) {
			return nil, fmt.Errorf("document %s: payload file %s is not valid UTF-8", name, entry.File)
		}
		docs = append(docs, Document{
			Name:        name,
			Description: entry.Description,
			Kind:        kind,
			Payload:     string(payload),
		})
	}

	return New(docs...), nil
}

// New builds a catalog from already validated documents.
func New(docs ...Document) *Catalog {
	m := make(map[string]Document, len(docs))
	for _, doc := range docs {
		m[doc.Name] = doc
	}
	return &Catalog{docs: m}
}

// Get returns the named document.
func (c *Catalog) Get(name string) (Document, error) {
	doc, ok := c.docs[name]
	if !ok {
		return Document{}, fmt.Errorf("unknown document: %s", name)
	}
	return doc, nil
}

// Names returns all document names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.docs))
	for name := range c.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Documents returns all documents ordered by name.
func (c *Catalog) Documents() []Document {
	names := c.Names()
	docs := make([]Document, 0, len(names))
	for _, name := range names {
		docs = append(docs, c.docs[name])
	}
	return docs
}

// Checksum returns the hex-encoded SHA-256 of the payload's UTF-8 form.
func (d Document) Checksum() string {
	return writer.Checksum([]byte(d.Payload))
}

// CharCount returns the number of characters (runes) in the payload.
func (d Document) CharCount() int {
	return utf8.RuneCountInString(d.Payload)
}
