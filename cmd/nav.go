package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nhileteam/nlt-cli/internal/authz"
	"github.com/spf13/cobra"
)

func newNavCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "nav",
		Short: "List the pages your role can see",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Restore(cmd.Context())
			if err != nil {
				return err
			}
			if !session.Authenticated() {
				return errors.New("not logged in; run \"nlt login\" first")
			}

			visible := authz.VisibleResources(session.Identity.Role)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(visible)
			}

			rendered, err := app.sessionRenderer(session, visible)
			if err != nil {
				return fmt.Errorf("render navigation: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Machine-readable output")

	return cmd
}
