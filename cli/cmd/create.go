package cmd

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/bootstrapp/bootstrapp/cli/instantiate"
	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/util"
)

var (
	dstPath            string
	forceMode          bool
	nonInteractiveMode bool
	paramsFromCli      *[]string
	paramsFile         string
	packagesFromCli    *[]string
	excludedPackages   *[]string
)

// NewCreateCmd creates a project from a template bundle.
func NewCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create <BUNDLE_NAME> [flags]",
		Short: "Create a project from a template bundle",
		Run: func(cmd *cobra.Command, args []string) {
			util.HandleCmdErr(cmd, internalCreateModule(args))
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return util.NewArgError("requires template bundle name argument")
			}
			return nil
		},
		Long: `Create a project from a template bundle.

A bundle is a directory with a Bootstrapp.json specification and a
Content tree. Bundles are searched in the configured template paths.`,
		Example: `
# Create a project, providing a parameter value.

    $ bootstrapp create my-library --param LIB_NAME=Acme

# Non-interactive creation with an extra package dependency.

    $ bootstrapp create my-app --non-interactive \
        --package logging=https://example.com/swift-log.git@1.5.0`,
	}

	createCmd.Flags().BoolVarP(&forceMode, "force", "f", false,
		"Force rewrite of the output directory if it already exists")
	createCmd.Flags().BoolVarP(&nonInteractiveMode, "non-interactive", "s", false,
		"Non-interactive mode")
	paramsFromCli = createCmd.Flags().StringArray("param", []string{},
		"Parameter value. Usage: --param PARAM_ID=value")
	createCmd.Flags().StringVarP(&paramsFile, "params-file", "", "",
		"Parameter values file path (YAML map)")
	packagesFromCli = createCmd.Flags().StringArray("package", []string{},
		"Additional package. Usage: --package name=url[@constraint]")
	excludedPackages = createCmd.Flags().StringArray("exclude-package", []string{},
		"Package name to drop from the merged package list")
	createCmd.Flags().StringVarP(&dstPath, "dst", "d", "",
		"Root directory for instantiation results")

	return createCmd
}

// internalCreateModule is a default create module.
func internalCreateModule(args []string) error {
	ctx := instantiate_ctx.InstantiateCtx{
		ForceMode:        forceMode,
		SilentMode:       nonInteractiveMode,
		ParamsFromCli:    *paramsFromCli,
		ParamsFile:       paramsFile,
		PackagesFromCli:  *packagesFromCli,
		ExcludedPackages: *excludedPackages,
		DestinationDir:   dstPath,
		Verbose:          cmdCtx.Cli.Verbose,
		CliOpts:          cliOpts,
	}

	if err := instantiate.FillCtx(cliOpts, &ctx, args); err != nil {
		return err
	}

	resultPath, err := instantiate.Run(&ctx)
	if err != nil {
		return err
	}

	log.Infof("Created %s", util.RelativeToCurrentWorkingDir(resultPath))
	return nil
}
