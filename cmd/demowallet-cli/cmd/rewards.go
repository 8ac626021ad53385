package cmd

import (
	"github.com/spf13/cobra"
)

// rewardsCmd prints the caller's EXP ledger.
var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "show the rewards ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := getClient().Rewards(cmd.Context())
		if err != nil {
			return err
		}

		return printJson(cmd, ledger)
	},
}

func init() {
	rootCmd.AddCommand(rewardsCmd)
}
