package engines

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderText(t *testing.T) {
	engine := GoTextEngine{}
	data := map[string]interface{}{"LIB_NAME": "Acme", "YEAR": "2026"}

	rendered, err := engine.RenderText("# {{.LIB_NAME}}, {{.YEAR}}", data)
	require.NoError(t, err)
	assert.Equal(t, "# Acme, 2026", rendered)

	// Plain text passes through unchanged.
	rendered, err = engine.RenderText("no expressions here", data)
	require.NoError(t, err)
	assert.Equal(t, "no expressions here", rendered)
}

func TestRenderTextMissingVar(t *testing.T) {
	engine := GoTextEngine{}

	_, err := engine.RenderText("{{.MISSING}}", map[string]interface{}{})
	require.ErrorContains(t, err, "template execution failed")
}

func TestRenderTextMalformed(t *testing.T) {
	engine := GoTextEngine{}

	_, err := engine.RenderText("{{.UNCLOSED", map[string]interface{}{})
	require.ErrorContains(t, err, "failed to parse")
}

func TestRenderFile(t *testing.T) {
	engine := GoTextEngine{}
	workDir := t.TempDir()

	srcPath := filepath.Join(workDir, "README.md")
	require.NoError(t, os.WriteFile(srcPath, []byte("# {{.LIB_NAME}}\n"), 0o640))

	dstPath := filepath.Join(workDir, "README.out.md")
	require.NoError(t, engine.RenderFile(srcPath, dstPath,
		map[string]interface{}{"LIB_NAME": "Acme"}))

	content, err := os.ReadFile(dstPath)
	require.NoError(t, err)
	assert.Equal(t, "# Acme\n", string(content))

	stat, err := os.Stat(dstPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), stat.Mode().Perm())
}

func TestEvaluateCondition(t *testing.T) {
	engine := GoTextEngine{}
	data := map[string]interface{}{
		"INCLUDE_TESTS": true,
		"MINIMAL":       false,
		"PLATFORM":      "iOS",
	}

	for name, testCase := range map[string]struct {
		condition string
		expected  bool
	}{
		"bare true bool":      {"INCLUDE_TESTS", true},
		"bare false bool":     {"MINIMAL", false},
		"dotted reference":    {".INCLUDE_TESTS", true},
		"absent key is falsy": {"UNKNOWN_FLAG", false},
		"equality match":      {`eq .PLATFORM "iOS"`, true},
		"equality mismatch":   {`eq .PLATFORM "Linux"`, false},
		"equality on absent":  {`eq .MISSING "Linux"`, false},
		"negation":            {"not .MINIMAL", true},
		"conjunction":         {"and .INCLUDE_TESTS (not .MINIMAL)", true},
		"empty condition":     {"", true},
		"non-empty string":    {"PLATFORM", true},
	} {
		t.Run(name, func(t *testing.T) {
			result, err := engine.EvaluateCondition(testCase.condition, data)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result)
		})
	}
}

func TestEvaluateConditionMalformed(t *testing.T) {
	engine := GoTextEngine{}

	_, err := engine.EvaluateCondition("eq .A ((", map[string]interface{}{})
	require.ErrorContains(t, err, "malformed condition")
}
