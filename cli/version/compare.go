package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// specVersionPattern matches dot-separated numeric version strings with
// at least two components, e.g. "1.2", "1.2.10". A bare "1" is not a
// valid version string.
var specVersionPattern = regexp.MustCompile(`^\d+(\.\d+)+$`)

// ParseComponents splits a dot-separated numeric version string into its
// numeric components.
func ParseComponents(versionStr string) ([]int, error) {
	if !specVersionPattern.MatchString(versionStr) {
		return nil, fmt.Errorf("invalid version string: %q", versionStr)
	}

	parts := strings.Split(versionStr, ".")
	components := make([]int, 0, len(parts))
	for _, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid version component %q: %s", part, err)
		}
		components = append(components, num)
	}
	return components, nil
}

// Compare compares two dot-separated numeric version strings component-wise.
// A version that is an exact prefix of a longer one is considered less,
// so "1.2" < "1.2.0". Returns -1, 0 or 1.
func Compare(a, b string) (int, error) {
	aComponents, err := ParseComponents(a)
	if err != nil {
		return 0, err
	}
	bComponents, err := ParseComponents(b)
	if err != nil {
		return 0, err
	}

	minLen := len(aComponents)
	if len(bComponents) < minLen {
		minLen = len(bComponents)
	}
	for i := 0; i < minLen; i++ {
		if aComponents[i] != bComponents[i] {
			if aComponents[i] < bComponents[i] {
				return -1, nil
			}
			return 1, nil
		}
	}

	if len(aComponents) == len(bComponents) {
		return 0, nil
	}
	if len(aComponents) < len(bComponents) {
		return -1, nil
	}
	return 1, nil
}
