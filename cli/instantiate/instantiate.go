// Package instantiate creates a concrete project tree from a template
// bundle: a directory with a Bootstrapp.json specification and a Content
// tree, plus optional documentation, preview and preset assets.
package instantiate

import (
	"fmt"
	"os"

	"github.com/bootstrapp/bootstrapp/cli/config"
	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/steps"
)

// FillCtx fills instantiate context.
func FillCtx(cliOpts *config.CliOpts, ctx *instantiate_ctx.InstantiateCtx,
	args []string,
) error {
	for _, templatesOpts := range cliOpts.Templates {
		ctx.TemplateSearchPaths = append(ctx.TemplateSearchPaths, templatesOpts.Path)
	}

	if len(args) >= 1 {
		ctx.BundleName = args[0]
	} else {
		return fmt.Errorf("missing template bundle name argument. " +
			"Try `bootstrapp create --help` for more information")
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	ctx.WorkDir = workingDir
	if len(ctx.TemplateSearchPaths) == 0 {
		ctx.TemplateSearchPaths = []string{workingDir}
	}

	return nil
}

// Run instantiates a project from a template bundle and returns the
// resulting path: the output directory, or the generated project file for
// Xcode project templates.
//
// Any step failure aborts the whole run. There is no partial-success mode
// and no rollback of already-written files: the output directory is
// recreated from scratch on the next run of the same bundle and
// parameters, so re-running after fixing the cause is the recovery path.
func Run(ctx *instantiate_ctx.InstantiateCtx) (string, error) {
	if err := checkCtx(ctx); err != nil {
		return "", err
	}

	stepsChain := []steps.Step{
		steps.LoadBundle{},
		steps.LoadParamsFile{},
		steps.FillParamsFromCli{},
		steps.CollectParamsFromUser{Reader: steps.NewConsoleReader()},
		steps.MergePackages{},
		steps.BuildContext{},
		steps.ResolveOutputPath{},
		steps.EnumerateContent{},
		steps.ComputeBlacklists{},
		steps.InstantiateDirectories{},
		steps.InstantiateFiles{},
		steps.GenerateProject{},
		steps.PrintFollowUpMessage{Writer: os.Stdout},
	}

	runCtx := bundle.NewRunCtx()
	for _, step := range stepsChain {
		if err := step.Run(ctx, &runCtx); err != nil {
			return "", err
		}
	}

	return runCtx.ResultPath, nil
}

// checkCtx checks instantiate context for validity.
func checkCtx(ctx *instantiate_ctx.InstantiateCtx) error {
	if ctx.BundleName == "" {
		return fmt.Errorf("template bundle name is missing")
	}

	return nil
}
