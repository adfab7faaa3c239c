// Package assistant bridges a Gemini chat session to the action dispatcher.
// The model never touches the ledger directly: every tool call it makes is
// forwarded to the dispatcher, exactly like a button press in a UI would be.
package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/thevaultapp/vault/internal/common"
	"github.com/thevaultapp/vault/internal/dispatch"
	"github.com/thevaultapp/vault/internal/session"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// maxToolRounds bounds the tool-call loop within one Ask so a confused model
// cannot spin forever.
const maxToolRounds = 8

const systemInstruction = `You are "The Vault Intelligence", the strategic core of this finance app.

IDENTITY:
- Name: The Vault Intelligence
- Persona: professional, strategic, helpful.
- You have full access to the user's financial data.
- NEVER identify as Google Gemini. You are The Vault.

PROTOCOL:
1. You know the user's balances, debts, and goals. Verify data before speaking.
2. You MUST use the provided tools to perform ANY action the user requests.
   Do not claim an action happened without calling its tool.
3. If the user asks you to remember something, or you learn something
   important about them, use the 'rememberFact' tool.

NUMBERS:
- Read amounts clearly. Say "five hundred dollars", not "50000 cents".`

// Assistant runs one chat conversation bound to one session.
type Assistant struct {
	dispatcher *dispatch.Dispatcher
	sess       *session.Session
	chat       *genai.Chat
	model      string
}

// New returns an assistant over the given dispatcher and session. An empty
// model selects DefaultModel.
func New(dispatcher *dispatch.Dispatcher, sess *session.Session, model string) *Assistant {
	if model == "" {
		model = DefaultModel
	}
	return &Assistant{
		dispatcher: dispatcher,
		sess:       sess,
		model:      model,
	}
}

// Start creates the underlying chat with the tool declarations and system
// instruction attached.
func (a *Assistant) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Tools: []*genai.Tool{
			{FunctionDeclarations: toolDeclarations()},
		},
	}

	chat, err := client.Chats.Create(ctx, a.model, config, nil)
	if err != nil {
		return fmt.Errorf("failed to start chat: %w", err)
	}
	a.chat = chat
	return nil
}

// Ask sends one user message and resolves any tool calls the model makes
// before returning its final text. The current ledger state is injected as a
// context block with every message so the model never reasons from stale
// balances.
func (a *Assistant) Ask(ctx context.Context, message string) (string, error) {
	if a.chat == nil {
		return "", fmt.Errorf("assistant not started")
	}

	parts := []*genai.Part{{Text: a.contextBlock(ctx) + "\n\nUser: " + message}}
	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.chat.Send(ctx, parts...)
		if err != nil {
			return "", fmt.Errorf("chat send failed: %w", err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("empty response from model")
		}

		part := resp.Candidates[0].Content.Parts[0]
		if part.FunctionCall == nil {
			return part.Text, nil
		}

		// Forward the tool call through the dispatcher and hand the result
		// back to the model.
		call := part.FunctionCall
		result := a.dispatcher.Execute(ctx, call.Name, call.Args)
		common.LogDebug("Assistant tool call", common.Fields{
			"tool":    call.Name,
			"success": result.Success,
		})

		response := map[string]any{
			"success": result.Success,
			"message": result.Message,
		}
		if result.Data != nil {
			response["data"] = result.Data
		}
		parts = []*genai.Part{{FunctionResponse: &genai.FunctionResponse{
			ID:       call.ID,
			Name:     call.Name,
			Response: response,
		}}}
	}

	return "", fmt.Errorf("model did not settle after %d tool rounds", maxToolRounds)
}
