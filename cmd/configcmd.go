package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/marcus/popup/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the popup config",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config (file values plus flag overrides)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the effective config to .popup/config.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Save(getBaseDir(), cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		logger.Info("config saved", "dir", getBaseDir())
		fmt.Fprintln(cmd.OutOrStdout(), "saved .popup/config.json")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSaveCmd)
}
