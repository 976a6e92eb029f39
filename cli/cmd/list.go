package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bootstrapp/bootstrapp/cli/instantiate"
	"github.com/bootstrapp/bootstrapp/cli/util"
)

// NewListCmd lists template bundles found in the search paths.
func NewListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available template bundles",
		Run: func(cmd *cobra.Command, args []string) {
			util.HandleCmdErr(cmd, internalListModule())
		},
	}

	return listCmd
}

// internalListModule is a default list module.
func internalListModule() error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Name", "Type", "Version", "Description"})

	for _, bundleInfo := range instantiate.ListBundles(cliOpts) {
		t.AppendRow(table.Row{bundleInfo.Name, bundleInfo.ProjectType,
			bundleInfo.TemplateVersion, bundleInfo.Description})
	}

	t.Render()
	return nil
}
