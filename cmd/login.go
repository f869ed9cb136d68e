package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [token]",
	Short: "Sign in with an access token",
	Long:  "Store the access token from your account page. With no argument the token is read from stdin.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openAll(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		var token string
		if len(args) == 1 {
			token = args[0]
		} else {
			fmt.Print("Access token: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read token: %w", err)
			}
			token = line
		}
		token = strings.TrimSpace(token)
		if token == "" {
			return fmt.Errorf("token must not be empty")
		}

		// Verify before storing so a typo doesn't wedge the session.
		env.Client.SetToken(token)
		if _, err := env.Client.ActiveDomains(cmd.Context()); err != nil {
			return fmt.Errorf("token rejected by service: %w", err)
		}

		if err := env.Session.SetToken(cmd.Context(), token); err != nil {
			return err
		}
		fmt.Println("Signed in.")
		return nil
	},
}
