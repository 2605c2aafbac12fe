package httpserver

import (
	"errors"
	"strings"
)

var errBadJSON = errors.New("bad_json")

// normalizePlayer trims whitespace; names are otherwise case-preserving.
func normalizePlayer(p string) string {
	return strings.TrimSpace(p)
}

// validatePlayer enforces 3–24 chars of letters, digits or underscore.
func validatePlayer(p string) error {
	if len(p) < 3 || len(p) > 24 {
		return errors.New("player must be 3–24 chars")
	}
	for _, r := range p {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return errors.New("player: letters, numbers, underscore only")
		}
	}
	return nil
}
