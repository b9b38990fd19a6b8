package naming

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// Prefix starts every normalized identifier.
	Prefix = "ID_"

	// Fallback replaces inputs that normalize to nothing.
	Fallback = "element"
)

var normalizedRe = regexp.MustCompile(`^ID_[a-z0-9_]+$`)

// Normalize returns the identifier form of s.
func Normalize(s string) string {
	if IsNormalized(s) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(Prefix) + len(s))
	sb.WriteString(Prefix)

	body := 0
	inRun := false
	for _, r := range strings.ToLower(s) {
		if r == '-' || unicode.IsSpace(r) {
			if !inRun {
				sb.WriteByte('_')
				body++
				inRun = true
			}
			continue
		}
		inRun = false
		if isIdentRune(r) {
			sb.WriteRune(r)
			body++
		}
	}

	if body == 0 {
		sb.WriteString(Fallback)
	}
	return sb.String()
}

// IsNormalized reports whether s is already in identifier form.
func IsNormalized(s string) bool {
	return normalizedRe.MatchString(s)
}

func isIdentRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
}
