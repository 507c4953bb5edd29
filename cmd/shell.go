package cmd

import (
	"github.com/sjzsdu/entrytree/lang"
	"github.com/sjzsdu/entrytree/shell"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: lang.T("Start an interactive shell"),
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := loadTree(cmd.Context())
		if err != nil {
			return lang.Errorf("Failed to load tree", err)
		}
		shell.NewSession(root, cmd.OutOrStdout()).Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
