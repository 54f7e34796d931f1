package main

import (
	"github.com/spf13/cobra"

	"github.com/AdrianWangs/go-cow/internal/demo"
)

var stripCmd = &cobra.Command{
	Use:   "strip <text>...",
	Short: "Remove spaces from each argument and report whether it was copied",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := demo.NewPrinter(cmd.OutOrStdout(), cfg.Color)
		for _, arg := range args {
			demo.Strip(p, arg)
		}
		return nil
	},
}
