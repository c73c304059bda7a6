package main

import (
	"github.com/esigns/signbot/internal/ledger"
	"github.com/spf13/cobra"
)

func newCheckCmd(open func() *ledger.Ledger) *cobra.Command {
	return &cobra.Command{
		Use:   "check KEY",
		Short: "Report whether a key exists and who redeemed it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := open().Records(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range records {
				if r.Key != ledger.Key(args[0]) {
					continue
				}
				if r.Redeemed() {
					warnColor.Fprintf(out, "%s redeemed by %s\n", r.Key, r.RedeemedBy)
				} else {
					okColor.Fprintf(out, "%s is valid and unredeemed\n", r.Key)
				}
				return nil
			}
			return ledger.ErrKeyNotFound
		},
	}
}
