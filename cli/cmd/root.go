package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/bootstrapp/bootstrapp/cli/cmdcontext"
	"github.com/bootstrapp/bootstrapp/cli/config"
	"github.com/bootstrapp/bootstrapp/cli/configure"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bootstrapp",
		Short: "Bootstrapp CLI",
		Long:  "Utility for instantiating projects from template bundles",
		Example: `$ bootstrapp list
  $ bootstrapp create my-library --param LIB_NAME=Acme
  $ bootstrapp completion`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetHandler(cli.Default)
			if cmdCtx.Cli.Verbose {
				log.SetLevel(log.DebugLevel)
			}

			var err error
			cliOpts, err = configure.GetCliOpts(cmdCtx.Cli.ConfigPath)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")

	rootCmd.AddCommand(
		NewCreateCmd(),
		NewListCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewCmdRoot().Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
