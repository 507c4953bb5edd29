package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sjzsdu/entrytree/config"
	"github.com/sjzsdu/entrytree/entry"
	"github.com/sjzsdu/entrytree/lang"
	"github.com/sjzsdu/entrytree/render"
	"github.com/sjzsdu/entrytree/share"
	"github.com/spf13/cobra"
)

var (
	markdownOutput bool
	findMode       string
	hideFiles      bool
	treeLevel      int
)

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: lang.T("List every entry with its path and size"),
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, e, err := target(cmd, args, 0)
		if err != nil {
			return err
		}

		dir, isDir := e.(*entry.Directory)
		if isDir && (markdownOutput || config.GetConfig(config.KeyRenderer) == "markdown") {
			doc, err := render.Markdown(dir)
			if err != nil {
				return err
			}
			r, err := render.NewMarkdownRenderer("")
			if err != nil {
				return err
			}
			return r.Render(cmd.OutOrStdout(), doc)
		}
		return e.Accept(entry.NewListVisitor(entry.NewWriterSink(cmd.OutOrStdout())))
	},
}

var sizeCmd = &cobra.Command{
	Use:   "size [path]",
	Short: lang.T("Print the total size of a path"),
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, e, err := target(cmd, args, 0)
		if err != nil {
			return err
		}
		sv := entry.NewSizeVisitor()
		if err := e.Accept(sv); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sv.Size())
		return nil
	},
}

var findCmd = &cobra.Command{
	Use:   "find [pattern] [path]",
	Short: lang.T("Find files whose name matches a pattern"),
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := config.GetConfigWithDefault(config.KeyFindPattern, share.DEFAULT_FIND_PATTERN)
		if len(args) > 0 {
			pattern = args[0]
		}
		match, err := nameMatcher(findMode, pattern)
		if err != nil {
			return err
		}

		_, e, err := target(cmd, args, 1)
		if err != nil {
			return err
		}
		ffv := entry.NewFileFindVisitor(match)
		if err := e.Accept(ffv); err != nil {
			return err
		}
		for _, f := range ffv.FoundFiles() {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: lang.T("Draw the tree"),
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, e, err := target(cmd, args, 0)
		if err != nil {
			return err
		}
		opts := entry.TreeOptions{ShowFiles: !hideFiles, MaxDepth: treeLevel}
		return e.Accept(entry.NewTreeVisitor(entry.NewWriterSink(cmd.OutOrStdout()), opts))
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [path]",
	Short: lang.T("Show tree statistics"),
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, e, err := target(cmd, args, 0)
		if err != nil {
			return err
		}
		for _, line := range render.StatsLines(entry.Stats(e)) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func nameMatcher(mode, pattern string) (entry.NameMatcher, error) {
	switch strings.ToLower(mode) {
	case "", "contains":
		return entry.NameContains(pattern), nil
	case "suffix":
		return entry.NameSuffix(pattern), nil
	case "glob":
		return entry.NewGlobMatcher(pattern)
	case "regexp":
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		return entry.NameRegexp(re), nil
	}
	return nil, fmt.Errorf("%s: %s", lang.T("Invalid value"), mode)
}

func init() {
	listCmd.Flags().BoolVarP(&markdownOutput, "markdown", "m", false, lang.T("Render markdown in the terminal"))
	findCmd.Flags().StringVar(&findMode, "mode", "contains", lang.T("Match mode: contains, suffix, glob, regexp"))
	treeCmd.Flags().BoolVar(&hideFiles, "dirs-only", false, lang.T("Hide files"))
	treeCmd.Flags().IntVarP(&treeLevel, "level", "L", 0, lang.T("Levels to draw, 0 for unlimited"))

	rootCmd.AddCommand(listCmd, sizeCmd, findCmd, treeCmd, statsCmd)
}
