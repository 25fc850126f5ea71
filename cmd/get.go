package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/tigermax139/sportradar-sdk/query"
	"github.com/tigermax139/sportradar-sdk/sportradar"
)

var (
	getParams   paramFlags
	getQuery    string
	queryEngine = query.NewCompiler()
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <operation>",
	Short: "Call one API operation",
	Long: `Call one operation of the selected sport client and print the response.

Examples:
  sportradar get getCompetitions
  sportradar get getSeasonSummaries --season sr:season:105353 --limit 20
  sportradar get getCompetitions --query 'map(competitions, .name)'`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runGet,
}

// operationsCmd lists the operations of the selected sport
var operationsCmd = &cobra.Command{
	Use:     "operations",
	Short:   "List the operations of the selected sport",
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range operationNames(client.Operations()) {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(operationsCmd)

	getParams.register(getCmd.Flags())
	getCmd.Flags().StringVarP(&getQuery, "query", "q", "", "expr expression evaluated against the response")
}

func runGet(cmd *cobra.Command, args []string) error {
	op, err := lookupOperation(client.Operations(), args[0])
	if err != nil {
		return err
	}

	// Compile before the request so a bad expression costs no quota
	var q *query.Query
	if getQuery != "" {
		if q, err = queryEngine.Compile(getQuery); err != nil {
			return fmt.Errorf("invalid query: %w", err)
		}
	}

	logger.Info().
		Str("sport", client.Sport()).
		Str("operation", args[0]).
		Msg("Calling operation")

	doc, err := op(cmd.Context(), getParams.params(cmd.Flags()))
	if err != nil {
		return fmt.Errorf("%s failed: %w", args[0], err)
	}

	var out any = doc
	if q != nil {
		if out, err = q.Run(doc); err != nil {
			return err
		}
	}
	return writeOutput(cmd.OutOrStdout(), out, cfg.Output.Format)
}

func lookupOperation(ops map[string]sportradar.Operation, name string) (sportradar.Operation, error) {
	op, ok := ops[name]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q (run 'sportradar operations' to list them)", name)
	}
	return op, nil
}

func operationNames(ops map[string]sportradar.Operation) []string {
	return slices.Sorted(maps.Keys(ops))
}
