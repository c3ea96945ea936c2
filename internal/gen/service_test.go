package gen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/mahmoudnasr/brandforge/internal/config"
)

// fakeChatModel records the last request and returns a canned reply or error.
type fakeChatModel struct {
	lastMessages []*schema.Message
	reply        string
	err          error
}

func (f *fakeChatModel) Generate(_ context.Context, messages []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.lastMessages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &schema.Message{Role: schema.Assistant, Content: f.reply}, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := f.Generate(ctx, messages, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

var testPersona = config.PersonaConfig{
	Role:      "Founder Advisory Brand Architect",
	Goal:      "Deliver a complete consulting brand.",
	Backstory: "Senior startup advisor.",
}

func TestGenerateBuildsSystemAndUserMessages(t *testing.T) {
	fake := &fakeChatModel{reply: "positioning doc"}
	svc := NewChatService(fake, testPersona)

	out, err := svc.Generate(context.Background(), "STEP 1 prompt", "earlier output")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "positioning doc" {
		t.Errorf("output = %q", out)
	}

	if len(fake.lastMessages) != 2 {
		t.Fatalf("messages = %d, want 2", len(fake.lastMessages))
	}
	sys, user := fake.lastMessages[0], fake.lastMessages[1]
	if sys.Role != schema.System {
		t.Errorf("first message role = %v, want system", sys.Role)
	}
	if !strings.Contains(sys.Content, testPersona.Role) || !strings.Contains(sys.Content, testPersona.Goal) {
		t.Errorf("system prompt missing persona fields: %q", sys.Content)
	}
	if user.Role != schema.User {
		t.Errorf("second message role = %v, want user", user.Role)
	}
	if !strings.Contains(user.Content, "STEP 1 prompt") || !strings.Contains(user.Content, "earlier output") {
		t.Errorf("user content missing prompt or context: %q", user.Content)
	}
}

func TestGenerateOmitsEmptyContext(t *testing.T) {
	fake := &fakeChatModel{reply: "ok"}
	svc := NewChatService(fake, testPersona)

	if _, err := svc.Generate(context.Background(), "prompt only", ""); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	user := fake.lastMessages[1]
	if user.Content != "prompt only" {
		t.Errorf("user content = %q, want bare prompt", user.Content)
	}
}

func TestGenerateEmptyReplyIsError(t *testing.T) {
	fake := &fakeChatModel{reply: "   \n"}
	svc := NewChatService(fake, testPersona)

	if _, err := svc.Generate(context.Background(), "p", ""); err == nil {
		t.Fatal("expected error for empty model output")
	}
}

func TestGenerateClassifiesRateLimit(t *testing.T) {
	fake := &fakeChatModel{err: errors.New("429 Too Many Requests: TPM quota exceeded")}
	svc := NewChatService(fake, testPersona)

	_, err := svc.Generate(context.Background(), "p", "")
	var rle *RateLimitError
	if !errors.As(err, &rle) {
		t.Fatalf("expected *RateLimitError, got %T: %v", err, err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		rateLimited bool
	}{
		{"nil", nil, false},
		{"http 429", errors.New("unexpected status 429"), true},
		{"quota", errors.New("insufficient quota for this month"), true},
		{"rate limit text", errors.New("Rate limit reached for gpt-4o-mini"), true},
		{"generic", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			var rle *RateLimitError
			if errors.As(got, &rle) != tt.rateLimited {
				t.Errorf("Classify(%v) rate-limited = %v, want %v", tt.err, !tt.rateLimited, tt.rateLimited)
			}
			if tt.err != nil && !tt.rateLimited && got != tt.err {
				t.Errorf("generic error should pass through unchanged")
			}
		})
	}
}
