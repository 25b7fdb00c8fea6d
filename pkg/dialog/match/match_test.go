package match

import (
	"testing"
)

func TestContainsAny(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		keywords []string
		want     bool
	}{
		{
			name:     "keyword as substring",
			message:  "расскажи стих узник пожалуйста",
			keywords: []string{"узник"},
			want:     true,
		},
		{
			name:     "keyword inside longer word still matches",
			message:  "кавказский пленник",
			keywords: []string{"кавказ"},
			want:     true,
		},
		{
			name:     "no keyword present",
			message:  "что ты думаешь о погоде",
			keywords: []string{"узник", "осень"},
			want:     false,
		},
		{
			name:     "empty keyword never matches",
			message:  "что угодно",
			keywords: []string{""},
			want:     false,
		},
		{
			name:     "empty keyword list",
			message:  "что угодно",
			keywords: nil,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContainsAny(Normalize(tt.message), tt.keywords)
			if got != tt.want {
				t.Errorf("ContainsAny() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		message string
		has     []string
		lacks   []string
	}{
		{
			name:    "punctuation is stripped",
			message: "Нет, не надо!",
			has:     []string{"нет", "не", "надо"},
			lacks:   []string{"нет,"},
		},
		{
			name:    "word boundaries prevent substring hits",
			message: "сонет о лете",
			has:     []string{"сонет"},
			lacks:   []string{"нет"},
		},
		{
			name:    "guillemets and dashes are separators",
			message: "«да» — конечно",
			has:     []string{"да", "конечно"},
			lacks:   []string{"«да»"},
		},
		{
			name:    "blank input yields no tokens",
			message: "   ",
			has:     nil,
			lacks:   []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.message)
			for _, want := range tt.has {
				if !tokens[want] {
					t.Errorf("Tokenize(%q) missing token %q", tt.message, want)
				}
			}
			for _, bad := range tt.lacks {
				if tokens[bad] {
					t.Errorf("Tokenize(%q) has unwanted token %q", tt.message, bad)
				}
			}
		})
	}
}

func TestHasAnyToken(t *testing.T) {
	tokens := Tokenize("да, хочу конечно")

	if !HasAnyToken(tokens, "да") {
		t.Error("expected token 'да' to match")
	}
	if !HasAnyToken(tokens, "нет", "хочу") {
		t.Error("expected token 'хочу' to match")
	}
	if HasAnyToken(tokens, "нет", "неа") {
		t.Error("expected no negative token to match")
	}
}

func TestTrimPunctuation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"«Пётр»", "Пётр"},
		{"  Анна!  ", "Анна"},
		{"—", ""},
		{"Олег", "Олег"},
	}

	for _, tt := range tests {
		if got := TrimPunctuation(tt.in); got != tt.want {
			t.Errorf("TrimPunctuation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFirstToken(t *testing.T) {
	if got := FirstToken("Пётр Иванович"); got != "Пётр" {
		t.Errorf("FirstToken() = %q, want %q", got, "Пётр")
	}
	if got := FirstToken("   "); got != "" {
		t.Errorf("FirstToken() on blank = %q, want empty", got)
	}
}
