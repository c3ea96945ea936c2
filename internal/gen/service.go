// Package gen is the generation service: a single persona answering one
// prompt at a time over a chat model.
package gen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/mahmoudnasr/brandforge/internal/config"
)

// Service produces text for a prompt with optional context from earlier
// steps. The call blocks until the model returns or fails; failures are
// classified (see RateLimitError) but never retried here.
type Service interface {
	Generate(ctx context.Context, prompt, contextText string) (string, error)
}

// ChatService implements Service over an eino chat model with a fixed persona.
type ChatService struct {
	chatModel model.BaseChatModel
	persona   config.PersonaConfig
}

// NewChatService creates a generation service bound to one persona.
func NewChatService(chatModel model.BaseChatModel, persona config.PersonaConfig) *ChatService {
	return &ChatService{chatModel: chatModel, persona: persona}
}

// Generate sends the prompt (plus bounded context) to the model and returns
// the assistant text.
func (s *ChatService) Generate(ctx context.Context, prompt, contextText string) (string, error) {
	messages := []*schema.Message{
		{Role: schema.System, Content: SystemPrompt(s.persona)},
		{Role: schema.User, Content: userContent(prompt, contextText)},
	}

	slog.Debug("generation request",
		"prompt_length", len(prompt),
		"context_length", len(contextText),
	)

	out, err := s.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", Classify(err)
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", fmt.Errorf("model returned empty output")
	}
	return out.Content, nil
}

// SystemPrompt assembles the persona descriptor into a system message.
func SystemPrompt(p config.PersonaConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a %s.\n", p.Role)
	if p.Backstory != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Backstory)
	}
	if p.Goal != "" {
		fmt.Fprintf(&b, "\nYour goal: %s\n", p.Goal)
	}
	return b.String()
}

// userContent appends prior-step context below the prompt. The context is
// informational; each task's prompt carries its own consistency instructions.
func userContent(prompt, contextText string) string {
	if contextText == "" {
		return prompt
	}
	return prompt + "\n\nContext from previous steps:\n\n" + contextText
}
