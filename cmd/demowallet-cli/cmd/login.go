package cmd

import (
	"github.com/spf13/cobra"
)

var loginProvider string

// loginCmd signs in (creating the demo account on first use) and prints the
// user plus the token for reuse with --token.
var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "sign in and print the session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := getClient().Login(cmd.Context(), loginProvider, args[0])
		if err != nil {
			return err
		}

		return printJson(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginProvider, "provider", "email", "login provider")
}
