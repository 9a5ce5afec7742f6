package cache

import "strings"

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "::"

// Keyer builds a cache key from a namespace plus identifier parts.
// It is responsible for producing stable keys across calls.
type Keyer interface {
	Key(namespace string, parts ...string) string
}

// defaultKeyer joins namespace and parts with KeySeparator, trimming
// surrounding whitespace so "1" and " 1" address the same entry.
type defaultKeyer struct{}

// NewDefaultKeyer creates a new instance of the default keyer.
func NewDefaultKeyer() Keyer {
	return &defaultKeyer{}
}

func (k *defaultKeyer) Key(namespace string, parts ...string) string {
	if len(parts) == 0 {
		return namespace
	}

	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, namespace)
	for _, part := range parts {
		segments = append(segments, strings.TrimSpace(part))
	}

	return strings.Join(segments, KeySeparator)
}
