package writer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEncoding marks encoding names that no registered codec matches.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrNotRepresentable marks payloads the chosen encoding cannot express.
	ErrNotRepresentable = errors.New("payload not representable")
)

// FileSystemError reports a failure to open, write, or close the destination
// file. Path is the destination exactly as the caller gave it.
type FileSystemError struct {
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("writing %s: %s", e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error { return e.Err }

// EncodingError reports that the payload could not be converted with the
// requested encoding, either because the name is unknown or because the
// payload contains characters the encoding cannot represent.
type EncodingError struct {
	Encoding string
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding payload as %s: %s", e.Encoding, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
