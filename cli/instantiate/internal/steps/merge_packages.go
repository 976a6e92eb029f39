package steps

import (
	"github.com/apex/log"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/spec"
)

// MergePackages represents the package list merge step. Packages are
// opaque data: the merged list is carried through to the generated
// project, never resolved.
type MergePackages struct{}

// Run merges specification packages with CLI additions and exclusions.
func (MergePackages) Run(ctx *instantiate_ctx.InstantiateCtx,
	runCtx *bundle.RunCtx,
) error {
	additions := make([]spec.PackageRef, 0, len(ctx.PackagesFromCli))
	for _, definition := range ctx.PackagesFromCli {
		ref, err := spec.ParsePackageRef(definition)
		if err != nil {
			return err
		}
		additions = append(additions, ref)
	}

	runCtx.Packages = spec.MergePackages(runCtx.Bundle.Spec.Packages,
		additions, ctx.ExcludedPackages)
	log.Debugf("Merged package list has %d entries", len(runCtx.Packages))
	return nil
}
