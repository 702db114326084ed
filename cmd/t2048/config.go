package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration in use as YAML. Save the output to
~/.tile2048/configs/t2048.yaml or ./configs/t2048.yaml to customize it.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.Marshal(settings)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}
