package cmd

import (
	"github.com/spf13/cobra"
)

var sendOpt struct {
	from   string
	to     string
	token  string
	amount string
}

// sendCmd creates a pending send transaction.
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "send tokens from a wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := getClient().Send(cmd.Context(), sendOpt.from, sendOpt.to, sendOpt.token, sendOpt.amount)
		if err != nil {
			return err
		}

		return printJson(cmd, tx)
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().StringVar(&sendOpt.from, "from", "", "source wallet id")
	sendCmd.Flags().StringVar(&sendOpt.to, "to", "", "destination address")
	sendCmd.Flags().StringVar(&sendOpt.token, "token", "ETH", "token symbol")
	sendCmd.Flags().StringVar(&sendOpt.amount, "amount", "0", "amount")
}
