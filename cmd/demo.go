package cmd

import (
	"github.com/sjzsdu/entrytree/lang"
	"github.com/sjzsdu/entrytree/source"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: lang.T("Run the demo driver"),
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return source.RunDemo(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
