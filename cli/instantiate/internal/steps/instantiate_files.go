package steps

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/apex/log"
	"github.com/otiai10/copy"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
	"github.com/bootstrapp/bootstrapp/cli/util"
)

// InstantiateFiles represents the file instantiation step. A file whose
// name matches a parametrizable pattern has its content rendered; any
// other file is copied byte for byte.
type InstantiateFiles struct{}

// Run writes every included content file into the output tree.
func (InstantiateFiles) Run(ctx *instantiate_ctx.InstantiateCtx,
	runCtx *bundle.RunCtx,
) error {
	contentRoot := runCtx.Bundle.ContentPath()
	data := runCtx.Context.Data()

	for _, relPath := range runCtx.ContentPaths {
		srcPath := filepath.Join(contentRoot, filepath.FromSlash(relPath))
		if !util.IsRegularFile(srcPath) {
			continue
		}
		fileName := path.Base(relPath)
		// Placeholder files only keep empty template directories present.
		if fileName == bundle.PlaceholderFileName {
			continue
		}
		if runCtx.IsExcluded(relPath) {
			log.Debugf("Skipping excluded %s", relPath)
			continue
		}

		renderedRelPath, err := runCtx.Engine.RenderText(relPath, data)
		if err != nil {
			return fmt.Errorf("failed file name processing %s: %s", relPath, err)
		}
		dstPath := filepath.Join(runCtx.OutputPath, filepath.FromSlash(renderedRelPath))
		if err := util.CreateDirectory(filepath.Dir(dstPath), defaultPermissions); err != nil {
			return err
		}

		if runCtx.Bundle.Spec.IsFileParametrizable(fileName) {
			if err := runCtx.Engine.RenderFile(srcPath, dstPath, data); err != nil {
				return err
			}
		} else {
			if err := copy.Copy(srcPath, dstPath); err != nil {
				return fmt.Errorf("failed to copy %s: %s", relPath, err)
			}
		}
	}

	return nil
}
