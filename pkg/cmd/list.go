package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c9s/indicator/pkg/config"
)

// go run ./cmd/indicator list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the indicator types usable in a config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, typ := range config.RegisteredTypes() {
			fmt.Fprintln(cmd.OutOrStdout(), typ)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
