package steps

import (
	"path/filepath"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
	"github.com/bootstrapp/bootstrapp/cli/util"
)

// EnumerateContent represents the content tree enumeration step.
type EnumerateContent struct{}

// Run lists every path under the bundle content root, relative to it.
// Directories precede their content, so later steps can create a
// directory before writing files beneath it.
func (EnumerateContent) Run(ctx *instantiate_ctx.InstantiateCtx,
	runCtx *bundle.RunCtx,
) error {
	relPaths, err := util.ListDirTree(runCtx.Bundle.ContentPath())
	if err != nil {
		return err
	}

	runCtx.ContentPaths = make([]string, 0, len(relPaths))
	for _, relPath := range relPaths {
		runCtx.ContentPaths = append(runCtx.ContentPaths, filepath.ToSlash(relPath))
	}
	return nil
}
