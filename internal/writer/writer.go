package writer

import (
	"crypto/sha256"
	"fmt"
	"os"
	"unicode/utf8"
)

// Result describes a completed write.
type Result struct {
	// Chars is the number of characters (runes) in the payload.
	Chars int
	// Bytes is the number of encoded bytes written to disk.
	Bytes int
	// Checksum is the hex-encoded SHA-256 of the written bytes.
	Checksum string
}

// Write encodes payload with the named encoding and writes it to destination,
// replacing any previous content. The payload is encoded before the
// destination is opened, so an encoding failure leaves the filesystem
// untouched. Parent directories are not created; a write failure may leave a
// partially written file behind.
func Write(payload, destination, encodingName string) (Result, error) {
	data, err := Encode(payload, encodingName)
	if err != nil {
		return Result{}, err
	}

	f, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return Result{}, &FileSystemError{Path: destination, Err: err}
	}

	// Close on every path, but report the write error first.
	_, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil {
		return Result{}, &FileSystemError{Path: destination, Err: werr}
	}
	if cerr != nil {
		return Result{}, &FileSystemError{Path: destination, Err: cerr}
	}

	return Result{
		Chars:    utf8.RuneCountInString(payload),
		Bytes:    len(data),
		Checksum: Checksum(data),
	}, nil
}

// Checksum returns the hex-encoded SHA-256 of the given data.
func Checksum(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h)
}
