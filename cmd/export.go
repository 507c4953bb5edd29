package cmd

import (
	"fmt"

	"github.com/sjzsdu/entrytree/lang"
	"github.com/sjzsdu/entrytree/render"
	"github.com/spf13/cobra"
)

var outputFile string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: lang.T("Export the listing to a file"),
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := loadTree(cmd.Context())
		if err != nil {
			return lang.Errorf("Failed to load tree", err)
		}
		if err := render.Output(root, outputFile); err != nil {
			return lang.Errorf("Failed to export", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", lang.T("Successfully exported to"), outputFile)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&outputFile, "out", "o", "tree.txt", lang.T("Output file name"))
	rootCmd.AddCommand(exportCmd)
}
