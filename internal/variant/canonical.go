package variant

import (
	"regexp"
	"strings"
)

var (
	parenthesized = regexp.MustCompile(`\s*\(([^()]*)\)`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	disallowed    = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Canonicalize reduces a variant name or URL fragment to a comparison key.
// The steps run in a fixed order; later ones rely on earlier normalization.
//
//	Canonicalize("S (O)")          // "s-o"
//	Canonicalize("VXi AMT")        // "vxi-amt"
//	Canonicalize("ZXi+ Dual Tone") // "zxi-dual-tone"
func Canonicalize(raw string) string {
	s := strings.ToLower(raw)
	s = parenthesized.ReplaceAllString(s, "-$1-")
	s = strings.NewReplacer("(", "", ")", "").Replace(s)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = disallowed.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
