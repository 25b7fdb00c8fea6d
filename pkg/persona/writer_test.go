package persona

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/pkg/llm"
)

// fakeProvider returns a canned response and records the last chat history.
type fakeProvider struct {
	response string
	err      error
	history  []llm.Message
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.history = history
	return f.response, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func testAuthor() *entity.Author {
	return &entity.Author{
		Name:             "Александр Сергеевич Пушкин",
		StyleDescription: "Лёгкий, ироничный слог.",
	}
}

func TestGenerateReplyPassthrough(t *testing.T) {
	provider := &fakeProvider{response: "  Мой ответ в стихах.  "}
	w := NewWriter(provider)

	reply := w.GenerateReply(context.Background(), testAuthor(), nil, "о чём ты мечтаешь?")
	if reply != "Мой ответ в стихах." {
		t.Errorf("reply = %q, want the trimmed model output", reply)
	}

	if len(provider.history) != 2 {
		t.Fatalf("history length = %d, want system + user", len(provider.history))
	}
	if provider.history[0].Role != "system" {
		t.Errorf("first message role = %q, want system", provider.history[0].Role)
	}
	if !strings.Contains(provider.history[0].Content, "Александр Сергеевич Пушкин") {
		t.Error("system prompt does not carry the author's name")
	}
	if provider.history[1].Content != "о чём ты мечтаешь?" {
		t.Errorf("user message = %q, want the original input", provider.history[1].Content)
	}
}

func TestGenerateReplyProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	w := NewWriter(provider)

	reply := w.GenerateReply(context.Background(), testAuthor(), nil, "вопрос")
	if reply != replyUpstreamError {
		t.Errorf("reply = %q, want the upstream-error apology", reply)
	}
}

func TestGenerateReplyBlankOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "empty", response: ""},
		{name: "whitespace only", response: "  \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(&fakeProvider{response: tt.response})
			reply := w.GenerateReply(context.Background(), testAuthor(), nil, "вопрос")
			if reply != replyEmptyOutput {
				t.Errorf("reply = %q, want the empty-output apology", reply)
			}
		})
	}
}
