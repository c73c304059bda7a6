package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/esigns/signbot/internal/ledger"
	"github.com/spf13/cobra"
)

// config holds the signkeys defaults read from the environment.
type config struct {
	KeysPath string `env:"KEYS_PATH" envDefault:"keys.txt"`
}

// newRootCmd builds the signkeys command tree.
func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:           "signkeys",
		Short:         "Inspect and maintain the premium key ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("keys") {
				return nil
			}
			// The flag wins over KEYS_PATH only when it was set explicitly
			return env.Parse(cfg)
		},
	}

	// Disable completion command
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVarP(&cfg.KeysPath, "keys", "k", "keys.txt", "path to the key ledger")

	open := func() *ledger.Ledger {
		return ledger.New(ledger.NewFileStore(cfg.KeysPath))
	}
	root.AddCommand(
		newGenerateCmd(open),
		newListCmd(open),
		newCheckCmd(open),
		newStatsCmd(open),
	)
	return root
}
