package main

import (
	"fmt"

	"github.com/esigns/signbot/internal/ledger"
	"github.com/spf13/cobra"
)

func newListCmd(open func() *ledger.Ledger) *cobra.Command {
	var unused bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every key and its owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := open().Records(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range records {
				switch {
				case !r.Redeemed():
					fmt.Fprintf(out, "%s\t%s\n", r.Key, dimColor.Sprint("unredeemed"))
				case !unused:
					fmt.Fprintf(out, "%s\t%s\n", r.Key, r.RedeemedBy)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&unused, "unused", false, "only print unredeemed keys")
	return cmd
}
