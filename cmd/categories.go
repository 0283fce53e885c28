package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"unitconv/internal/converter"
	"unitconv/pkg/domain"

	"github.com/spf13/cobra"
)

func categoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories [category]",
		Short: "Lists categories, or the units of one category grouped by system",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				c      converter.Converter = converter.New(nil)
				client                     = remoteClient(cmd)
				w                          = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			)

			if len(args) == 0 {
				categories := c.Categories()
				if client != nil {
					var err error
					if categories, err = client.Categories(cmd.Context()); err != nil {
						return err
					}
				}

				fmt.Fprintln(w, "ID\tNAME\tUNITS") //nolint: errcheck
				for _, category := range categories {
					symbols := make([]string, 0, len(category.Units))
					for _, u := range category.Units {
						symbols = append(symbols, u.Symbol)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", category.ID, category.Name, strings.Join(symbols, ", ")) //nolint: errcheck
				}

				return w.Flush()
			}

			var (
				groups []domain.UnitGroup
				err    error
			)
			if client != nil {
				groups, err = client.Units(cmd.Context(), args[0])
			} else {
				groups, err = c.UnitsOf(args[0])
			}
			if err != nil {
				return err
			}
			for _, group := range groups {
				fmt.Fprintf(w, "%s\n", group.Label) //nolint: errcheck
				for _, u := range group.Units {
					fmt.Fprintf(w, "  %s\t%s\n", u.Symbol, u.Name) //nolint: errcheck
				}
			}

			return w.Flush()
		},
	}

	addRemoteFlags(cmd)

	return cmd
}
