package cmd

import (
	"fmt"
	"strings"

	"github.com/sjzsdu/entrytree/config"
	"github.com/sjzsdu/entrytree/lang"
	"github.com/spf13/cobra"
)

var (
	showAllConfigs bool
	clearConfigs   []string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: lang.T("Set config"),
	Long:  lang.T("Set global configuration"),
	Args:  cobra.NoArgs,
	RunE:  handleConfigCommand,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVarP(&showAllConfigs, "list", "l", false, lang.T("List all configurations"))
	configCmd.Flags().StringSliceVar(&clearConfigs, "clear", nil, lang.T("Clear configuration keys"))

	for _, key := range config.GetAllConfigKeys() {
		configCmd.Flags().String(key, config.GetConfig(key), lang.T(config.GetConfigDescription(key)))
	}
}

func handleConfigCommand(cmd *cobra.Command, args []string) error {
	if err := config.LoadConfig(); err != nil {
		return lang.Errorf("Error loading config", err)
	}
	out := cmd.OutOrStdout()

	if showAllConfigs {
		fmt.Fprintln(out, lang.T("Current configurations:"))
		for _, key := range config.GetAllConfigKeys() {
			if value := config.GetConfig(key); value != "" {
				fmt.Fprintf(out, "%s=%s\n", config.GetEnvKey(key), value)
			}
		}
		return nil
	}

	changed := false
	for _, key := range config.GetAllConfigKeys() {
		flag := cmd.Flag(key)
		if flag == nil || !flag.Changed {
			continue
		}
		value, _ := cmd.Flags().GetString(key)
		if !config.IsValidConfigOption(key, value) {
			return fmt.Errorf("%s %s=%s (%s)", lang.T("Invalid value"), key, value,
				strings.Join(config.GetConfigOptions(key), ", "))
		}
		config.SetConfig(key, value)
		changed = true
	}
	for _, key := range clearConfigs {
		config.ClearConfig(key)
		changed = true
	}

	if changed {
		if err := config.SaveConfig(); err != nil {
			return lang.Errorf("Error saving config", err)
		}
	}
	return nil
}
