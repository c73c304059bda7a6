package main

import (
	"fmt"

	"github.com/esigns/signbot/internal/ledger"
	"github.com/spf13/cobra"
)

func newStatsCmd(open func() *ledger.Ledger) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print redeemed and unredeemed counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := open().Records(cmd.Context())
			if err != nil {
				return err
			}

			redeemed := 0
			for _, r := range records {
				if r.Redeemed() {
					redeemed++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d\nredeemed: %d\nunredeemed: %d\n",
				len(records), redeemed, len(records)-redeemed)
			return nil
		},
	}
}
