package writer

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// CanonicalEncoding resolves name against the WHATWG encoding index and
// returns the canonical label, e.g. "UTF-8" and "utf8" both resolve to
// "utf-8", and "latin1" resolves to "windows-1252". Lookup is
// case-insensitive.
func CanonicalEncoding(name string) (string, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", &EncodingError{Encoding: name, Err: ErrUnknownEncoding}
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		return "", &EncodingError{Encoding: name, Err: ErrUnknownEncoding}
	}
	return canonical, nil
}

// Encode converts payload to the named encoding. The payload must be valid
// UTF-8 and every character must be representable in the target encoding;
// anything else is an EncodingError, never a silent substitution.
func Encode(payload, name string) ([]byte, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, &EncodingError{Encoding: name, Err: ErrUnknownEncoding}
	}

	// The UTF-8 encoder substitutes U+FFFD for ill-formed input instead of
	// failing, so validity has to be checked up front.
	if !utf8.ValidString(payload) {
		return nil, &EncodingError{Encoding: name, Err: fmt.Errorf("%w: payload is not valid UTF-8", ErrNotRepresentable)}
	}

	data, err := enc.NewEncoder().Bytes([]byte(payload))
	if err != nil {
		return nil, &EncodingError{Encoding: name, Err: fmt.Errorf("%w: %v", ErrNotRepresentable, err)}
	}
	return data, nil
}
