package steps

import (
	"fmt"
	"path/filepath"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
	"github.com/bootstrapp/bootstrapp/cli/util"
)

// InstantiateDirectories represents the directory creation step. All
// directories are created before any file is written beneath them.
type InstantiateDirectories struct{}

// Run creates every included content directory under the output root.
// The relative path itself is rendered: a directory may be named by a
// parameter expression.
func (InstantiateDirectories) Run(ctx *instantiate_ctx.InstantiateCtx,
	runCtx *bundle.RunCtx,
) error {
	contentRoot := runCtx.Bundle.ContentPath()
	data := runCtx.Context.Data()

	for _, relPath := range runCtx.ContentPaths {
		srcPath := filepath.Join(contentRoot, filepath.FromSlash(relPath))
		if !util.IsDir(srcPath) {
			continue
		}
		if runCtx.IsExcluded(relPath) {
			continue
		}

		renderedRelPath, err := runCtx.Engine.RenderText(relPath, data)
		if err != nil {
			return fmt.Errorf("failed directory name processing %s: %s", relPath, err)
		}

		dirPath := filepath.Join(runCtx.OutputPath, filepath.FromSlash(renderedRelPath))
		if err := util.CreateDirectory(dirPath, defaultPermissions); err != nil {
			return err
		}
	}

	return nil
}
