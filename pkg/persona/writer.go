// Package persona adapts the generic LLM provider into the generative
// fallback for a literary persona. It never surfaces provider errors to the
// caller: both transport failure and blank output map to fixed degraded-mode
// replies that are safe to forward as-is.
package persona

import (
	"context"
	"log"
	"strings"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/pkg/content"
	"ai-writerbot-be/pkg/dialog/prompt"
	"ai-writerbot-be/pkg/llm"
)

const (
	replyUpstreamError = "Не удалось связаться с литературной музой — сервер ответил ошибкой и оборвал беседу. " +
		"Я уже готовлю перо к новой попытке, попробуйте написать ещё раз через минутку."
	replyEmptyOutput = "Я задумался так глубоко, что чернила застенчиво спрятались. " +
		"Попробуйте переформулировать вопрос — и я отвечу с прежним пушкинским задором!"

	maxReplyTokens = 200
)

// Writer is the generative fallback adapter.
type Writer interface {
	GenerateReply(ctx context.Context, author *entity.Author, works []content.WorkGroup, userMessage string) string
}

type writer struct {
	provider llm.LLMProvider
}

func NewWriter(provider llm.LLMProvider) Writer {
	return &writer{provider: provider}
}

// GenerateReply asks the model to answer in the author's voice, grounded in
// the profile and catalogued works. The return value is always user-safe
// text; upstream failures are logged and converted to apology replies, and
// are never retried here.
func (w *writer) GenerateReply(ctx context.Context, author *entity.Author, works []content.WorkGroup, userMessage string) string {
	history := []llm.Message{
		{Role: "system", Content: prompt.BuildSystemPrompt(author, works)},
		{Role: "user", Content: strings.TrimSpace(userMessage)},
	}

	text, err := w.provider.Chat(ctx, history, llm.WithMaxTokens(maxReplyTokens))
	if err != nil {
		log.Printf("[ERROR] Persona generation failed: %v", err)
		return replyUpstreamError
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return replyEmptyOutput
	}
	return text
}
