package steps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBlacklistsExclusions(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.Clock = func() time.Time { return fixedTime }
	ctx.ParamsFromCli = []string{"INCLUDE_TESTS=false", "PLATFORM=iOS"}

	require.NoError(t, FillParamsFromCli{}.Run(ctx, &runCtx))
	require.NoError(t, BuildContext{}.Run(ctx, &runCtx))
	require.NoError(t, ComputeBlacklists{}.Run(ctx, &runCtx))

	assert.Equal(t, []string{"Tests"}, runCtx.DirBlacklist)
	assert.True(t, runCtx.FileBlacklist["Sources/linux_shim.swift"])

	assert.True(t, runCtx.IsExcluded("Tests"))
	assert.True(t, runCtx.IsExcluded("Tests/SmokeTest.swift"))
	assert.False(t, runCtx.IsExcluded("Tests2/fixtures.txt"))
}

func TestComputeBlacklistsAllIncluded(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.Clock = func() time.Time { return fixedTime }
	ctx.ParamsFromCli = []string{"INCLUDE_TESTS=true", "PLATFORM=Linux"}

	require.NoError(t, FillParamsFromCli{}.Run(ctx, &runCtx))
	require.NoError(t, BuildContext{}.Run(ctx, &runCtx))
	require.NoError(t, ComputeBlacklists{}.Run(ctx, &runCtx))

	assert.Empty(t, runCtx.DirBlacklist)
	assert.Empty(t, runCtx.FileBlacklist)
}

func TestComputeBlacklistsMalformedCondition(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.Clock = func() time.Time { return fixedTime }

	require.NoError(t, BuildContext{}.Run(ctx, &runCtx))
	runCtx.Bundle.Spec.IncludeFiles[0].Condition = "eq .PLATFORM (("

	err := ComputeBlacklists{}.Run(ctx, &runCtx)
	require.ErrorContains(t, err, "file inclusion rule")
}
