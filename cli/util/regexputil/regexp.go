package regexputil

import (
	"fmt"
	"regexp"
)

// CompileAnchored compiles pattern so that it matches a whole string only.
// A bare sub-string match is not enough for file name patterns: "md" must
// not match "README.md.bak". The pattern is always wrapped rather than
// inspected for anchors, so an escaped literal like `price\$` is not
// mistaken for an end anchor; redundant anchors inside the group are
// harmless.
func CompileAnchored(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %s", pattern, err)
	}
	return re, nil
}

// MatchesAny reports whether str fully matches at least one of the patterns.
func MatchesAny(patterns []*regexp.Regexp, str string) bool {
	for _, re := range patterns {
		if re.MatchString(str) {
			return true
		}
	}
	return false
}
