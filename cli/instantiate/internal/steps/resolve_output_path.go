package steps

import (
	"fmt"
	"os"
	"time"

	"github.com/apex/log"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
	"github.com/bootstrapp/bootstrapp/cli/util"
)

const resultsDirName = "Results"

const defaultPermissions = os.FileMode(0o755)

// ResolveOutputPath represents the output directory resolution step.
// Instantiation is destructive-idempotent per path: an existing directory
// at the resolved path is removed and recreated empty.
type ResolveOutputPath struct{}

// Run renders the output directory name and prepares a fresh output
// directory at <results root>/Results/<date>/<name>.
func (ResolveOutputPath) Run(ctx *instantiate_ctx.InstantiateCtx,
	runCtx *bundle.RunCtx,
) error {
	outputName, err := runCtx.Engine.RenderText(
		runCtx.Bundle.Spec.OutputDirectoryName, runCtx.Context.Data())
	if err != nil {
		return fmt.Errorf("failed to render output directory name: %s", err)
	}
	if outputName == "" {
		return fmt.Errorf("output directory name rendered to an empty string")
	}

	resultsRoot := ctx.DestinationDir
	if resultsRoot == "" && ctx.CliOpts != nil {
		resultsRoot = ctx.CliOpts.Results.Dir
	}
	if resultsRoot == "" {
		resultsRoot = os.TempDir()
	}

	// Reuse the run time resolved when the context was built, so the
	// path date never diverges from the DATE context value.
	now := runCtx.Now
	if now.IsZero() {
		now = time.Now()
		if ctx.Clock != nil {
			now = ctx.Clock()
		}
	}

	outputPath, err := util.JoinAbspath(resultsRoot, resultsDirName,
		now.Format("2006-01-02"), outputName)
	if err != nil {
		return err
	}

	if _, err := os.Stat(outputPath); err == nil {
		if !ctx.ForceMode && !ctx.SilentMode {
			confirmed, err := util.AskConfirm(os.Stdin,
				fmt.Sprintf("%s already exists, overwrite it?", outputPath))
			if err != nil {
				return err
			}
			if !confirmed {
				return fmt.Errorf("instantiation aborted: %s already exists", outputPath)
			}
		}
		log.Debugf("Removing existing %s", outputPath)
		if err := os.RemoveAll(outputPath); err != nil {
			return fmt.Errorf("failed to remove %s: %s", outputPath, err)
		}
	}

	if err := util.CreateDirectory(outputPath, defaultPermissions); err != nil {
		return err
	}

	log.Infof("Instantiating %s in %q", ctx.BundleName, outputPath)
	runCtx.OutputPath = outputPath
	return nil
}
