package resolve

import (
	"strings"
	"testing"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/pkg/content"
	"ai-writerbot-be/pkg/dialog/match"
)

func chainSnapshot() *content.Snapshot {
	return &content.Snapshot{
		Author: &entity.Author{Name: "Александр Сергеевич Пушкин"},
		Poems: []entity.PoemEntry{
			{
				Title:    "Няне",
				Text:     "Подруга дней моих суровых...",
				Keywords: []string{"няне", "няня"},
			},
			{
				Title:    "Узник",
				Text:     "Сижу за решеткой в темнице сырой...",
				Keywords: []string{"узник", "орёл"},
			},
		},
		Characters: []entity.CharacterEntry{
			{
				Name:        "Татьяна Ларина",
				Description: "Любимая героиня, воплощение русской души.",
				Keywords:    []string{"татьяна", "ларина"},
			},
		},
		Faq: []entity.FaqEntry{
			{
				Question: "Где родился Пушкин?",
				Answer:   "Я родился в Москве 6 июня 1799 года.",
				Keywords: []string{"родился", "где родился"},
			},
			{
				Question: "Кто няня Пушкина?",
				Answer:   "Моя няня — Арина Родионовна.",
				Keywords: []string{"арина"},
			},
		},
	}
}

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantSource string
		wantReply  string
	}{
		{
			name:       "poem keyword",
			input:      "прочитай про узника",
			wantSource: entity.TurnSourcePoem,
			wantReply:  "Узник\n\nСижу за решеткой в темнице сырой...",
		},
		{
			name:       "poem beats listing intent",
			input:      "расскажи стих о няне",
			wantSource: entity.TurnSourcePoem,
			wantReply:  "Няне\n\nПодруга дней моих суровых...",
		},
		{
			name:       "listing intent",
			input:      "расскажи какой-нибудь стих",
			wantSource: entity.TurnSourcePoemListing,
			wantReply:  "Могу рассказать стихи: Няне, Узник. Уточните, какой вам нужен.",
		},
		{
			name:       "character insight",
			input:      "кто такая Татьяна?",
			wantSource: entity.TurnSourceCharacter,
			wantReply:  "Татьяна Ларина: Любимая героиня, воплощение русской души.",
		},
		{
			name:       "faq answer",
			input:      "где ты родился?",
			wantSource: entity.TurnSourceFaq,
			wantReply:  "Я родился в Москве 6 июня 1799 года.",
		},
	}

	snap := chainSnapshot()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Resolve(snap, match.Normalize(tt.input))
			if !result.Matched {
				t.Fatalf("Resolve(%q) did not match", tt.input)
			}
			if result.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", result.Source, tt.wantSource)
			}
			if result.Reply != tt.wantReply {
				t.Errorf("Reply = %q, want %q", result.Reply, tt.wantReply)
			}
		})
	}
}

func TestResolvePoemBeatsCharacter(t *testing.T) {
	// A message hitting both a poem keyword and a character keyword must yield
	// the poem: the chain is strict precedence, not best match.
	snap := chainSnapshot()
	result := Resolve(snap, match.Normalize("Татьяна читала про узника"))
	if !result.Matched {
		t.Fatal("expected a match")
	}
	if result.Source != entity.TurnSourcePoem {
		t.Errorf("Source = %q, want %q", result.Source, entity.TurnSourcePoem)
	}
}

func TestResolveCharacterBeatsFaq(t *testing.T) {
	snap := chainSnapshot()
	result := Resolve(snap, match.Normalize("Татьяна Ларина спросила, где ты родился"))
	if !result.Matched {
		t.Fatal("expected a match")
	}
	if result.Source != entity.TurnSourceCharacter {
		t.Errorf("Source = %q, want %q", result.Source, entity.TurnSourceCharacter)
	}
}

func TestResolveNoMatch(t *testing.T) {
	snap := chainSnapshot()
	result := Resolve(snap, match.Normalize("что ты думаешь о современной поэзии?"))
	if result.Matched {
		t.Fatalf("expected a miss, got %q from %q", result.Reply, result.Source)
	}
	if result.Reply != "" || result.Source != "" {
		t.Error("a miss must carry no reply or source")
	}
}

func TestResolveEmptySnapshot(t *testing.T) {
	snap := &content.Snapshot{Author: &entity.Author{Name: "Пушкин"}}
	result := Resolve(snap, match.Normalize("расскажи стих"))
	if !result.Matched {
		t.Fatal("listing intent must match even with no poems")
	}
	if !strings.HasPrefix(result.Reply, "Могу рассказать стихи: ") {
		t.Errorf("unexpected listing reply %q", result.Reply)
	}
}
