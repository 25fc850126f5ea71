package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tigermax139/sportradar-sdk/sportradar"
)

// sportsCmd lists the registered sports and their credentials
var sportsCmd = &cobra.Command{
	Use:   "sports",
	Short: "List supported sports and API key variables",
	Long: `List every registered sport with the environment variable holding its API key
for each access level, and whether that variable is set.`,
	PreRunE: initializeConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		printSports(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sportsCmd)
}

func printSports(w io.Writer) {
	levels := []sportradar.AccessLevel{sportradar.Trial, sportradar.Production}

	for _, sport := range sportradar.Sports() {
		fmt.Fprintln(w, color.New(color.Bold).Sprint(sport))
		for _, level := range levels {
			status := color.RedString("not set")
			if _, ok := sportradar.ResolveAPIKey(sport, level); ok {
				status = color.GreenString("set")
			}
			fmt.Fprintf(w, "  %-11s %-45s %s\n", level, sportradar.APIKeyEnvVar(sport, level), status)
		}
	}
}
