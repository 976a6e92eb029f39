package steps

import (
	"fmt"
	"path/filepath"

	"github.com/apex/log"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/spec"
	"github.com/bootstrapp/bootstrapp/cli/util"
)

// LoadBundle represents the bundle lookup and specification load step.
type LoadBundle struct{}

// Run searches the template search paths for the named bundle and loads
// its specification.
func (LoadBundle) Run(ctx *instantiate_ctx.InstantiateCtx, runCtx *bundle.RunCtx) error {
	for _, templatesLocation := range ctx.TemplateSearchPaths {
		bundlePath := filepath.Join(templatesLocation, ctx.BundleName)
		if !util.IsDir(bundlePath) {
			continue
		}
		specPath := filepath.Join(bundlePath, spec.SpecFileName)
		if !util.IsRegularFile(specPath) {
			continue
		}

		log.Infof("Using template bundle from %s", bundlePath)
		loadedSpec, err := spec.Load(specPath)
		if err != nil {
			return err
		}
		if err := loadedSpec.CheckCompatibility(); err != nil {
			return err
		}

		runCtx.Bundle = bundle.Bundle{RootPath: bundlePath, Spec: loadedSpec}
		if !util.IsDir(runCtx.Bundle.ContentPath()) {
			return fmt.Errorf("bundle %s has no %s directory",
				bundlePath, bundle.ContentDirName)
		}

		// Work on a copy: the specification parameter list stays
		// replayable.
		runCtx.Parameters = make([]spec.Parameter, len(loadedSpec.Parameters))
		copy(runCtx.Parameters, loadedSpec.Parameters)
		return nil
	}

	return fmt.Errorf("template bundle '%s' is not found", ctx.BundleName)
}
