package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/genai"

	"github.com/thevaultapp/vault/internal/assistant"
	"github.com/thevaultapp/vault/internal/cli"
	"github.com/thevaultapp/vault/internal/common"
	"github.com/thevaultapp/vault/internal/dispatch"
	"github.com/thevaultapp/vault/internal/session"
)

func chatCmd() *cobra.Command {
	var model string
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to The Vault Intelligence",
		Long: `Start an interactive chat with the assistant. The assistant operates the
ledger through the same actions as the other commands: it can record
transactions, pay debts, transfer funds, and answer questions about your
finances. Type 'bye' to exit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				client, err := newGeminiClient(ctx)
				if err != nil {
					return common.NewUserError("Failed to initialize the Gemini client; set VAULT_GEMINI_API_KEY or GEMINI_API_KEY", err)
				}

				a := assistant.New(d, sess, model)
				if err := a.Start(ctx, client); err != nil {
					return common.NewUserError("Failed to start the assistant", err)
				}
				return runChatLoop(ctx, a, sess)
			})
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "Gemini model to use (default "+assistant.DefaultModel+")")
	return cmd
}

func newGeminiClient(ctx context.Context) (*genai.Client, error) {
	var config *genai.ClientConfig
	if key := viper.GetString("gemini_api_key"); key != "" {
		config = &genai.ClientConfig{APIKey: key}
	}
	return genai.NewClient(ctx, config)
}

func runChatLoop(ctx context.Context, a *assistant.Assistant, sess *session.Session) error {
	fmt.Println(cli.FormatTitle("The Vault Intelligence"))
	fmt.Println(cli.SubtleStyle.Render("Type 'bye' to exit."))

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(cli.FormatPrompt("vault"))
		input, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil // Clean exit on Ctrl+D
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		reply, err := a.Ask(ctx, input)
		if err != nil {
			fmt.Println(cli.FormatError("The assistant hit a snag: " + err.Error()))
			continue
		}
		fmt.Println(reply)

		if saveErr := sess.LastSaveError(); saveErr != nil {
			fmt.Println(cli.FormatWarning("Changes may not be persisted: " + common.UserMessage(saveErr)))
		}
	}
}
