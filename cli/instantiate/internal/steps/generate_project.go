package steps

import (
	"fmt"
	"path/filepath"

	"github.com/apex/log"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/generator"
	"github.com/bootstrapp/bootstrapp/cli/util"
)

// GenerateProject represents the project generation dispatch step.
// General, package and meta template types report the output directory
// as-is; the Xcode project type hands off to the external generator.
type GenerateProject struct{}

// Run dispatches by the specification project type.
func (GenerateProject) Run(ctx *instantiate_ctx.InstantiateCtx,
	runCtx *bundle.RunCtx,
) error {
	projectType := runCtx.Bundle.Spec.ProjectType
	if !projectType.IsXcode() {
		runCtx.ResultPath = runCtx.OutputPath
		return nil
	}

	if runCtx.Generator == nil {
		runCtx.Generator = generator.NewXcodegenGenerator(ctx.Verbose)
	}

	configPath := filepath.Join(runCtx.OutputPath, projectType.ConfigFileName())

	// The generator discovers preset files via relative lookup, so run it
	// from the bundle presets directory when one exists. The working
	// directory is restored on every exit path.
	presetsPath := runCtx.Bundle.PresetsPath()
	if util.IsDir(presetsPath) {
		restore, err := util.Chdir(presetsPath)
		if err != nil {
			return err
		}
		if restore != nil {
			defer func() {
				if err := restore(); err != nil {
					log.Warnf("%s", err)
				}
			}()
		}
	}

	resultPath, err := runCtx.Generator.Generate(configPath, runCtx.OutputPath,
		runCtx.Context.Data())
	if err != nil {
		return fmt.Errorf("failed to generate %s project: %s",
			projectType.ConfigFileName(), err)
	}

	runCtx.ResultPath = resultPath
	return nil
}
