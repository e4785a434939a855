package cmd

import (
	"errors"
	"fmt"

	"github.com/nhileteam/nlt-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Restore(cmd.Context())
			if err != nil {
				return err
			}
			if session.Authenticated() {
				return fmt.Errorf("already logged in as %s; run \"nlt logout\" first", session.Identity.Email)
			}

			identity, err := app.sessions.Login(cmd.Context(), email, password)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidCredentials) {
					return errors.New("login failed: invalid email or password")
				}
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s!\n", identity.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
