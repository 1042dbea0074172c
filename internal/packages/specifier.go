package packages

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Specifier is an npm package argument split into name and version range.
type Specifier struct {
	Name  string // "zod", "@scope/pkg"
	Range string // "^3.22.0", "latest", or empty
}

// ParseSpecifier splits tok at the version separator. Scoped names
// ("@scope/name") keep their leading "@".
func ParseSpecifier(tok string) Specifier {
	search := tok
	offset := 0
	if strings.HasPrefix(tok, "@") && strings.Contains(tok, "/") {
		search = tok[1:]
		offset = 1
	}
	i := strings.LastIndex(search, "@")
	if i < 0 {
		return Specifier{Name: tok}
	}
	return Specifier{Name: tok[:i+offset], Range: tok[i+offset+1:]}
}

// CheckSpecifiers returns a warning for every token whose version part is
// neither a dist-tag nor a valid semver constraint. Tokens that point at
// URLs, paths, or aliases are not inspected.
func CheckSpecifiers(tokens []string) []string {
	var warnings []string
	for _, tok := range tokens {
		if strings.Contains(tok, ":") || strings.HasPrefix(tok, ".") || strings.HasPrefix(tok, "/") {
			continue
		}
		spec := ParseSpecifier(tok)
		if spec.Name == "" {
			warnings = append(warnings, fmt.Sprintf("%q has no package name", tok))
			continue
		}
		if spec.Range == "" || isDistTag(spec.Range) {
			continue
		}
		if _, err := semver.NewConstraint(spec.Range); err != nil {
			warnings = append(warnings, fmt.Sprintf("%q: version range %q does not parse: %v", tok, spec.Range, err))
		}
	}
	return warnings
}

// isDistTag reports whether r looks like an npm dist-tag (latest, next, beta).
// Tags must start with a letter; "v1" style prefixes are treated as versions.
func isDistTag(r string) bool {
	if r == "" {
		return false
	}
	c := r[0]
	if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
		return false
	}
	if (c == 'v' || c == 'V') && len(r) > 1 && r[1] >= '0' && r[1] <= '9' {
		return false
	}
	for _, ch := range r {
		if !(ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '-' || ch == '_' || ch == '.') {
			return false
		}
	}
	return true
}
