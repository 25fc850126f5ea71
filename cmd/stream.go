package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tigermax139/sportradar-sdk/query"
	"github.com/tigermax139/sportradar-sdk/sportradar"
)

// maxStreamLine bounds a single push message.
const maxStreamLine = 4 << 20

var (
	streamParams sportradar.StreamParams
	streamFilter string
)

// streamCmd represents the stream command
var streamCmd = &cobra.Command{
	Use:   "stream <events|statistics>",
	Short: "Follow a push feed",
	Long: `Subscribe to the live events or statistics push feed and print every message
until interrupted. --filter drops messages for which the expr expression is false.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"events", "statistics"},
	PreRunE:   initializeApp,
	RunE:      runStream,
}

func init() {
	rootCmd.AddCommand(streamCmd)

	streamCmd.Flags().StringVar(&streamParams.Format, "format", "", "stream format (global APIs)")
	streamCmd.Flags().StringVar(&streamParams.EventID, "event-id", "", "event id")
	streamCmd.Flags().StringVar(&streamParams.CompetitionID, "competition", "", "competition id")
	streamCmd.Flags().StringVar(&streamParams.SeasonID, "season", "", "season id")
	streamCmd.Flags().StringVar(&streamParams.SportID, "sport-id", "", "sport id (global APIs)")
	streamCmd.Flags().StringVar(&streamParams.SportEventID, "sport-event", "", "sport event id")
	streamCmd.Flags().StringVarP(&streamFilter, "filter", "f", "", "expr expression each message must satisfy")
}

func runStream(cmd *cobra.Command, args []string) error {
	var subscribe func(context.Context, sportradar.StreamParams) (io.ReadCloser, error)
	switch args[0] {
	case "events":
		subscribe = client.StreamEvents
	case "statistics":
		subscribe = client.StreamStatistics
	default:
		return fmt.Errorf("unknown feed %q (must be 'events' or 'statistics')", args[0])
	}

	var filter *query.Query
	if streamFilter != "" {
		var err error
		if filter, err = queryEngine.Compile(streamFilter); err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	body, err := subscribe(ctx, streamParams)
	if err != nil {
		return fmt.Errorf("stream %s: %w", args[0], err)
	}
	// Global APIs report failed subscriptions through the log only
	if body == nil {
		return fmt.Errorf("stream %s: subscription failed", args[0])
	}
	defer body.Close()

	logger.Info().Str("sport", client.Sport()).Str("feed", args[0]).Msg("Stream opened")

	err = copyStream(ctx, body, cmd.OutOrStdout(), filter)
	if ctx.Err() != nil {
		logger.Info().Msg("Stream closed")
		return nil
	}
	return err
}

// copyStream writes every line of r to w. With a filter, lines that are not
// JSON objects or do not match are dropped.
func copyStream(ctx context.Context, r io.Reader, w io.Writer, filter *query.Query) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxStreamLine)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if filter != nil {
			var msg map[string]any
			if err := json.Unmarshal(line, &msg); err != nil {
				logger.Debug().Err(err).Msg("Skipping non-JSON stream line")
				continue
			}
			matched, err := filter.Match(msg)
			if err != nil {
				logger.Debug().Err(err).Msg("Filter failed on stream message")
				continue
			}
			if !matched {
				continue
			}
		}

		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
