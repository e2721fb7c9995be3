package royale

import "strings"

// NormalizeTag returns the canonical form of a player tag: trimmed,
// upper-cased and without the leading '#'.
func NormalizeTag(tag string) string {
	t := strings.ToUpper(strings.TrimSpace(tag))
	return strings.TrimPrefix(t, "#")
}

// DisplayTag returns the tag as players see it in game, with '#'.
func DisplayTag(tag string) string {
	n := NormalizeTag(tag)
	if n == "" {
		return ""
	}
	return "#" + n
}

func requireTag(tag string) (string, error) {
	n := NormalizeTag(tag)
	if n == "" {
		return "", newValidationError("tag", "player tag is required")
	}
	return n, nil
}
