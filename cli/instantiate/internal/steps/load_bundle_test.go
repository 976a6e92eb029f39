package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/spec"
)

// loadTestBundle loads the my-library fixture bundle into a fresh run
// context.
func loadTestBundle(t *testing.T) (*instantiate_ctx.InstantiateCtx, bundle.RunCtx) {
	t.Helper()

	ctx := &instantiate_ctx.InstantiateCtx{
		BundleName:          "my-library",
		TemplateSearchPaths: []string{"testdata"},
		SilentMode:          true,
	}
	runCtx := bundle.NewRunCtx()
	require.NoError(t, LoadBundle{}.Run(ctx, &runCtx))
	return ctx, runCtx
}

func TestLoadBundle(t *testing.T) {
	_, runCtx := loadTestBundle(t)

	require.NotNil(t, runCtx.Bundle.Spec)
	assert.Equal(t, "my-library", runCtx.Bundle.Spec.ID)
	assert.Len(t, runCtx.Parameters, 3)
}

func TestLoadBundleCopiesParameters(t *testing.T) {
	_, runCtx := loadTestBundle(t)

	updated, err := runCtx.Parameters[0].ApplyRawValue("Acme")
	require.NoError(t, err)
	runCtx.Parameters[0] = updated

	// The specification's own list is untouched.
	assert.Equal(t, "", runCtx.Bundle.Spec.Parameters[0].CurrentString)
}

func TestLoadBundleNotFound(t *testing.T) {
	ctx := &instantiate_ctx.InstantiateCtx{
		BundleName:          "no-such-bundle",
		TemplateSearchPaths: []string{"testdata"},
	}
	runCtx := bundle.NewRunCtx()
	require.ErrorContains(t, LoadBundle{}.Run(ctx, &runCtx), "is not found")
}

func TestLoadBundleSearchPathOrder(t *testing.T) {
	ctx := &instantiate_ctx.InstantiateCtx{
		BundleName:          "my-library",
		TemplateSearchPaths: []string{"no-such-dir", "testdata"},
	}
	runCtx := bundle.NewRunCtx()
	require.NoError(t, LoadBundle{}.Run(ctx, &runCtx))
	assert.Equal(t, spec.GeneralProject(), runCtx.Bundle.Spec.ProjectType)
}
