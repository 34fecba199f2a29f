package scene

import (
	"slices"
	"strings"
)

// Key returns the canonical identity of an entity spanned by the given labels.
// Labels are sorted by code point before joining, so the key does not depend on
// construction order: Key("Α", "Β") == Key("Β", "Α").
func Key(labels ...string) string {
	sorted := slices.Clone(labels)
	slices.Sort(sorted)
	return strings.Join(sorted, "")
}

// SplitLabels splits a token such as "ΑΒΓ" into single-letter labels
func SplitLabels(token string) []string {
	labels := make([]string, 0, len(token))
	for _, r := range token {
		labels = append(labels, string(r))
	}
	return labels
}

// TokenKey canonicalizes a token made of single-letter labels
func TokenKey(token string) string {
	return Key(SplitLabels(token)...)
}
