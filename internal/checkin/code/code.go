// Package code canonicalizes raw scan/keystroke strings into candidate
// attendance codes, independent of source channel.
package code

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// DefaultMaxLength bounds candidate codes; badge codes are far shorter, so
// anything beyond this is decoder garbage.
const DefaultMaxLength = 64

// ErrMalformed is returned for every input that cannot become a candidate
// code. Normalization is total: garbage is rejected explicitly, never passed
// through.
var ErrMalformed = errors.New("malformed code")

// cameraPrefix is the URI-style prefix some camera decoders prepend to the
// payload they extract.
const cameraPrefix = "GC:"

// Normalizer canonicalizes raw input into candidate codes. It is pure and
// holds only configuration.
type Normalizer struct {
	maxLength int
}

// New builds a Normalizer. Non-positive maxLength falls back to the default.
func New(maxLength int) *Normalizer {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Normalizer{maxLength: maxLength}
}

// Normalize trims whitespace and channel artifacts, uppercases, and bounds
// the result. Idempotent: normalizing an already-normalized code returns it
// unchanged.
func (n *Normalizer) Normalize(raw string) (string, error) {
	// Interior whitespace only appears in mistyped manual entry; codes never
	// contain it. Removing it before artifact stripping means the strip loop
	// below sees the final character sequence.
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	s = strings.ToUpper(s)

	// Strip channel artifacts until the string is stable. Decoders stack
	// them in the wild: a symbology guard character outside a GC: prefix, or
	// a doubled prefix from a re-encoded badge. One stripping pass would
	// leave a string a second Normalize still changes.
	for {
		trimmed := strings.TrimFunc(s, unicode.IsControl)

		// Hardware scanners in keyboard-wedge mode emit symbology guard
		// characters around the payload.
		trimmed = strings.Trim(trimmed, "*;")

		if rest, ok := strings.CutPrefix(trimmed, cameraPrefix); ok {
			trimmed = rest
		}
		if trimmed == s {
			break
		}
		s = trimmed
	}

	if s == "" {
		return "", fmt.Errorf("%w: empty after normalization", ErrMalformed)
	}
	if len(s) > n.maxLength {
		return "", fmt.Errorf("%w: exceeds %d characters", ErrMalformed, n.maxLength)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("%w: contains control characters", ErrMalformed)
		}
	}
	return s, nil
}
