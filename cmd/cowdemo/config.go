package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AdrianWangs/go-cow/pkg/logger"
)

var configOut string

func init() {
	configCmd.Flags().StringVar(&configOut, "out", "", "write the effective config to this JSON file instead of stdout")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or save the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		if configOut != "" {
			if err := cfg.SaveToFile(configOut); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			logger.Infof("config written to %s", configOut)
			return nil
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}
