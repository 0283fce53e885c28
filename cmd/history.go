package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"unitconv/internal/config"
	"unitconv/pkg/apiclient"
	"unitconv/pkg/domain"
	"unitconv/pkg/logger"

	"github.com/spf13/cobra"
)

// historyLog is the part of the history log the CLI reads and clears. It is
// served by local storage or by a running server.
type historyLog interface {
	List(ctx context.Context, limit uint) ([]domain.HistoryEntry, error)
	Clear(ctx context.Context) error
}

type remoteHistory struct {
	client *apiclient.Client
}

func (r remoteHistory) List(ctx context.Context, limit uint) ([]domain.HistoryEntry, error) {
	return r.client.History(ctx, limit)
}

func (r remoteHistory) Clear(ctx context.Context) error {
	return r.client.ClearHistory(ctx)
}

func openHistoryLog(cmd *cobra.Command, cfg *config.Config) (historyLog, func(), error) {
	if client := remoteClient(cmd); client != nil {
		return remoteHistory{client: client}, func() {}, nil
	}

	h, _, closeHistory, err := openHistory(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}

	return h, closeHistory, nil
}

func historyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspects the conversion history",
	}
	addRemoteFlags(cmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists recorded conversions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			limit, _ := cmd.Flags().GetUint("limit")

			h, closeHistory, err := openHistoryLog(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeHistory()

			entries, err := h.List(ctx, limit)
			if err != nil {
				return fmt.Errorf("could not list history: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tCATEGORY\tINPUT\tOUTPUT") //nolint: errcheck
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s %s\n", //nolint: errcheck
					e.Timestamp.Local().Format(time.DateTime), e.Category,
					e.InputValue, e.InputUnit, e.OutputValue, e.OutputUnit)
			}

			return w.Flush()
		},
	}
	listCmd.Flags().Uint("limit", 0, "Maximum number of entries (0 lists the whole log)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Deletes every recorded conversion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			h, closeHistory, err := openHistoryLog(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeHistory()

			if err := h.Clear(ctx); err != nil {
				return fmt.Errorf("could not clear history: %w", err)
			}
			logger.Info(ctx, "history cleared")

			return nil
		},
	}

	cmd.AddCommand(listCmd, clearCmd)

	return cmd
}
