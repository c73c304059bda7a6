package main

import (
	"fmt"

	"github.com/esigns/signbot/internal/ledger"
	"github.com/spf13/cobra"
)

func newGenerateCmd(open func() *ledger.Ledger) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Mint unredeemed keys and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys, err := open().Generate(cmd.Context(), count)
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			okColor.Fprintf(cmd.ErrOrStderr(), "generated %d key(s)\n", len(keys))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of keys to mint")
	return cmd
}
