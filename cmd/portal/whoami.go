package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.session.RequireAuth(); err != nil {
			return err
		}

		// Prefer the live profile; fall back to the stored one offline.
		user, err := a.client.Me(cmd.Context())
		if err != nil {
			stored, ok := a.session.User()
			if !ok {
				return err
			}
			user = stored
		}

		fmt.Printf("[%s] %s <%s>\n", user.Initials(), user.FullName(), user.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
