package cmd

import (
	"fmt"

	chatrender "github.com/nhileteam/nlt-cli/internal/adapters/render/chat"
	"github.com/nhileteam/nlt-cli/internal/application"
	"github.com/nhileteam/nlt-cli/internal/assistant"
	"github.com/nhileteam/nlt-cli/internal/ports"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var lang string
	var message string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the NLT assistant",
		Long:  "Opens the interactive NLT assistant. With --message, asks a single question and prints the answer.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			locale, err := assistant.ParseLocale(lang)
			if err != nil {
				return err
			}

			svc := application.NewAssistantService(locale, ports.SystemClock{}, app.logger)

			if message != "" {
				return runOneShotChat(cmd, svc, message)
			}

			return chatrender.Run(cmd.Context(), svc, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "Assistant language (en|vi)")
	cmd.Flags().StringVar(&message, "message", "", "Ask a single question instead of opening the widget")

	return cmd
}

func runOneShotChat(cmd *cobra.Command, svc *application.AssistantService, message string) error {
	if _, err := svc.Submit(message); err != nil {
		return err
	}

	reply, err := svc.Reply()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), reply.Content)
	return err
}
