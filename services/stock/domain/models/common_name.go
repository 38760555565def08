package models

import (
	"fmt"
	"strings"
)

// CommonName is a curated autocompletion entry: a display name keyed by
// a normalized identifier derived from it.
type CommonName struct {
	Key  string // NameKey(Name); unique per user
	Name string // whitespace-trimmed original spelling
}

// NewCommonName trims name and derives its key. Returns an error when
// the trimmed name is empty.
func NewCommonName(name string) (CommonName, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CommonName{}, fmt.Errorf("common name must not be empty")
	}
	return CommonName{Key: NameKey(name), Name: name}, nil
}

// NameKey derives the normalized upsert key for a name: path-separator
// characters are folded to underscores so the key stays path-safe in
// any backing store. The fold is not injective — "a/b" and "a_b" share
// a key and the later write wins. That collision is accepted behavior.
func NameKey(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "/", "_")
}
