package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sjzsdu/entrytree/config"
	"github.com/sjzsdu/entrytree/entry"
	"github.com/sjzsdu/entrytree/lang"
	"github.com/sjzsdu/entrytree/logger"
	"github.com/sjzsdu/entrytree/share"
	"github.com/sjzsdu/entrytree/source"
	"github.com/spf13/cobra"
)

var (
	workDir       string
	gitRepo       string
	repoURL       string
	revision      string
	includeHidden bool
	maxDepth      int
	debugMode     bool
	language      string
)

var RootCmd = rootCmd

var rootCmd = &cobra.Command{
	Use:   share.BUILDNAME,
	Short: lang.T("Composite tree and visitor toolkit"),
	Long:  lang.T("Build a file/directory tree and run visitors on it"),
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}
		fmt.Fprintln(os.Stderr, lang.T("Invalid arguments")+": ", args)
		os.Exit(1)
	},
}

func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workDir, "directory", "d", "", lang.T("Work directory path"))
	rootCmd.PersistentFlags().StringVarP(&gitRepo, "git", "g", "", lang.T("Load tree from a git repository"))
	rootCmd.PersistentFlags().StringVarP(&repoURL, "repository", "r", "", lang.T("Load tree from a git repository"))
	rootCmd.PersistentFlags().StringVar(&revision, "rev", "", lang.T("Git revision to read"))
	rootCmd.PersistentFlags().BoolVarP(&includeHidden, "hidden", "a", false, lang.T("Include hidden entries"))
	rootCmd.PersistentFlags().IntVar(&maxDepth, "depth", 0, lang.T("Maximum load depth for directory sources, 0 for unlimited"))
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "v", false, lang.T("Debug mode"))
	rootCmd.PersistentFlags().StringVar(&language, "locale", "", lang.T("Language"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		share.SetDebug(debugMode)
		if language != "" {
			lang.SetLanguage(language)
		}

		level := config.GetConfigWithDefault(config.KeyLogLevel, "warn")
		if debugMode {
			level = "debug"
		}
		return logger.Init(logger.Config{Level: level, Format: "console"})
	}
}

// loadTree 按参数选择树的来源：git 仓库、远程仓库、本地目录，都未指定时使用演示树
func loadTree(ctx context.Context) (*entry.Directory, error) {
	switch {
	case gitRepo != "":
		return source.FromGit(ctx, gitRepo, revision)
	case repoURL != "":
		dir, err := source.CloneRepository(ctx, repoURL)
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(dir)
		root, err := source.FromGit(ctx, dir, revision)
		if err != nil {
			return nil, err
		}
		return root, nil
	case workDir != "":
		abs, err := filepath.Abs(workDir)
		if err != nil {
			return nil, err
		}
		return source.FromFS(os.DirFS(abs), ".", source.FSOptions{
			RootName:      filepath.Base(abs),
			IncludeHidden: includeHidden,
			MaxDepth:      maxDepth,
		})
	default:
		return source.DemoTree(), nil
	}
}

// target 加载树并解析可选的路径参数
func target(cmd *cobra.Command, args []string, index int) (*entry.Directory, entry.Entry, error) {
	root, err := loadTree(cmd.Context())
	if err != nil {
		return nil, nil, lang.Errorf("Failed to load tree", err)
	}
	if index >= len(args) {
		return root, root, nil
	}
	e, err := entry.Lookup(root, args[index])
	if err != nil {
		return nil, nil, err
	}
	return root, e, nil
}
