package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/gigasecond/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify gigasecond configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/gigasecond/config.yaml
Project-specific overrides can be placed in .gigasecond.yaml`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	switch len(args) {
	case 0:
		return displayAllConfig(cmd, cfg)
	case 1:
		value, err := config.Get(cfg, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	default:
		return setConfigKey(cmd, cfg, args[0], args[1])
	}
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cmd *cobra.Command, cfg *config.Config) error {
	for _, key := range config.Keys {
		value, err := config.Get(cfg, key)
		if err != nil {
			return err
		}
		if value == "" {
			value = "(not set)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, value)
	}
	return nil
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(cmd *cobra.Command, cfg *config.Config, key, value string) error {
	if err := config.Set(cfg, key, value); err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.GetUserConfigPath()
	}
	if err := config.SaveTo(cfg, path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	green := color.New(color.FgGreen)
	green.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}
