package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	for name, testCase := range map[string]struct {
		a        string
		b        string
		expected int
	}{
		"equal":                    {"1.2.3", "1.2.3", 0},
		"patch less":               {"1.2.2", "1.2.3", -1},
		"minor greater":            {"1.3", "1.2.9", 1},
		"major wins":               {"2.0", "1.99.99", 1},
		"prefix is less":           {"1.2", "1.2.0", -1},
		"longer prefix is greater": {"1.2.0.0", "1.2.0", 1},
		"multi digit components":   {"1.10", "1.9", 1},
	} {
		t.Run(name, func(t *testing.T) {
			result, err := Compare(testCase.a, testCase.b)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result)
		})
	}
}

func TestCompareInvalid(t *testing.T) {
	_, err := Compare("1.2-beta", "1.2")
	require.ErrorContains(t, err, "invalid version string")

	_, err = Compare("1.2", "")
	require.ErrorContains(t, err, "invalid version string")
}

func TestParseComponents(t *testing.T) {
	components, err := ParseComponents("1.2.10")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 10}, components)

	// At least two components are required.
	_, err = ParseComponents("3")
	require.Error(t, err)
	_, err = ParseComponents("v1.2")
	require.Error(t, err)
	_, err = ParseComponents("1..2")
	require.Error(t, err)
}
