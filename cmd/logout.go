package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the active course",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openAll(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.Session.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}
