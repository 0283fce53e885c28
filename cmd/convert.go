package main

import (
	"context"
	"errors"
	"fmt"

	"unitconv/internal/config"
	"unitconv/internal/converter"
	"unitconv/internal/history"
	"unitconv/pkg/domain"
	"unitconv/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errMemoryHistory = errors.New("history is kept in memory by the server; use --server or configure postgres storage")

// openHistory opens the persistent history log for one-shot commands. In
// async mode the returned recorder enqueues jobs for a running server.
func openHistory(ctx context.Context, cfg *config.Config) (history.History, history.Recorder, func(), error) {
	if !cfg.UsesPostgres() {
		return nil, nil, nil, errMemoryHistory
	}

	pgsql, closeStrg := getPostgres(ctx, cfg)
	h := history.New(pgsql, history.NewOptions(cfg))
	if cfg.History.Async {
		return h, history.NewQueueRecorder(pgsql), closeStrg, nil
	}

	return h, h, closeStrg, nil
}

func convertCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <category> <from> <to> <value>",
		Short: "Converts a value between two units of a category",
		Example: `  unitconv convert length m cm 1,5
  unitconv convert temperature °C °F -- -40`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			record, _ := cmd.Flags().GetBool("record")

			req := domain.ConversionRequest{Category: args[0], From: args[1], To: args[2], Input: args[3]}

			if client := remoteClient(cmd); client != nil {
				res, err := client.Convert(ctx, req, record)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", //nolint: errcheck
					converter.FormatValue(res.Input), res.From.Symbol, res.Text)
				if record && !res.Recorded {
					logger.Warn(ctx, "server could not record the conversion")
				}

				return nil
			}

			res, err := converter.New(nil).Convert(req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", //nolint: errcheck
				converter.FormatValue(res.Input), res.From.Symbol, res.String())

			if !record {
				return nil
			}

			_, recorder, closeHistory, err := openHistory(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeHistory()

			entry, err := recorder.Record(ctx, history.FromConversion(req, res))
			if err != nil {
				return fmt.Errorf("could not record conversion: %w", err)
			}
			if entry != nil {
				logger.Info(ctx, "conversion recorded", zap.Stringer("entryID", entry.ID))
			} else {
				logger.Info(ctx, "conversion queued for recording")
			}

			return nil
		},
	}

	cmd.Flags().Bool("record", false, "Append the conversion to the history log")
	addRemoteFlags(cmd)

	return cmd
}
