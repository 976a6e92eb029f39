package instantiate_ctx

import (
	"time"

	"github.com/bootstrapp/bootstrapp/cli/config"
)

// InstantiateCtx contains information for instantiating a project from a
// template bundle.
type InstantiateCtx struct {
	// BundleName is a template bundle to instantiate.
	BundleName string
	// WorkDir is the launch working directory.
	WorkDir string
	// DestinationDir overrides the results root directory.
	DestinationDir string
	// TemplateSearchPaths is a set of paths to search for a bundle.
	TemplateSearchPaths []string
	// ParamsFromCli holds parameter definitions provided in command line.
	ParamsFromCli []string
	// ParamsFile is a YAML file with parameter values.
	ParamsFile string
	// PackagesFromCli holds additional package definitions.
	PackagesFromCli []string
	// ExcludedPackages holds names of packages to drop from the merge.
	ExcludedPackages []string
	// ForceMode skips the overwrite confirmation.
	ForceMode bool
	// SilentMode disables user interaction.
	SilentMode bool
	// Verbose streams collaborator output.
	Verbose bool
	// Clock returns the current time. Defaults to time.Now; tests inject
	// a fixed clock for deterministic output.
	Clock func() time.Time
	// CliOpts is the loaded bootstrapp environment config.
	CliOpts *config.CliOpts
}
