package cmd

import (
	"github.com/spf13/cobra"
)

// walletsCmd lists the caller's wallets, or one wallet's transactions when
// an id is given.
var walletsCmd = &cobra.Command{
	Use:   "wallets [id]",
	Short: "list wallets or a wallet's transactions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			txs, err := getClient().Transactions(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printJson(cmd, txs)
		}

		wallets, err := getClient().Wallets(cmd.Context())
		if err != nil {
			return err
		}

		return printJson(cmd, wallets)
	},
}

func init() {
	rootCmd.AddCommand(walletsCmd)
}
