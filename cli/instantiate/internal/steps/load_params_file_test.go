package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeParamsFile(t *testing.T, content string) string {
	t.Helper()

	paramsPath := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(paramsPath, []byte(content), 0o644))
	return paramsPath
}

func TestLoadParamsFile(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.ParamsFile = writeParamsFile(t, `
LIB_NAME: Acme
INCLUDE_TESTS: false
PLATFORM: macOS
`)

	require.NoError(t, LoadParamsFile{}.Run(ctx, &runCtx))

	assert.Equal(t, "Acme", runCtx.Param("LIB_NAME").CurrentString)
	assert.False(t, runCtx.Param("INCLUDE_TESTS").CurrentBool)
	assert.Equal(t, 1, runCtx.Param("PLATFORM").CurrentOption)
	assert.True(t, runCtx.SetParams["LIB_NAME"])
}

func TestLoadParamsFileSkippedWhenUnset(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.ParamsFile = ""

	require.NoError(t, LoadParamsFile{}.Run(ctx, &runCtx))
	assert.Empty(t, runCtx.SetParams)
}

func TestLoadParamsFileMissing(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.ParamsFile = filepath.Join(t.TempDir(), "absent.yaml")

	require.ErrorContains(t, LoadParamsFile{}.Run(ctx, &runCtx),
		"params file loading error")
}

func TestLoadParamsFileUnknownParameter(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.ParamsFile = writeParamsFile(t, "NO_SUCH_PARAM: value\n")

	require.ErrorContains(t, LoadParamsFile{}.Run(ctx, &runCtx),
		"unknown parameter")
}

func TestCliOverridesParamsFile(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.ParamsFile = writeParamsFile(t, "LIB_NAME: FromFile\n")
	ctx.ParamsFromCli = []string{"LIB_NAME=FromCli"}

	// File first, CLI second: the pipeline order makes CLI win.
	require.NoError(t, LoadParamsFile{}.Run(ctx, &runCtx))
	require.NoError(t, FillParamsFromCli{}.Run(ctx, &runCtx))

	assert.Equal(t, "FromCli", runCtx.Param("LIB_NAME").CurrentString)
}
