package state

import (
	"math/rand"
	"strings"
	"testing"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/pkg/content"
	"ai-writerbot-be/pkg/dialog/pick"
	"ai-writerbot-be/pkg/store"

	"github.com/google/uuid"
)

func testSnapshot(poemTitles ...string) *content.Snapshot {
	poems := make([]entity.PoemEntry, 0, len(poemTitles))
	for _, title := range poemTitles {
		poems = append(poems, entity.PoemEntry{Title: title, Text: "строки стихотворения"})
	}
	return &content.Snapshot{
		Author: &entity.Author{Name: "Александр Сергеевич Пушкин"},
		Poems:  poems,
	}
}

func newTestMachine() *Machine {
	return NewMachine(pick.NewPicker(rand.New(rand.NewSource(7))))
}

func newTestSession(stage store.Stage) *store.Session {
	s := store.NewSession(uuid.New(), uuid.New())
	s.Stage = stage
	return s
}

func TestNameCapture(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantStage store.Stage
	}{
		{
			name:      "introduction phrase",
			input:     "меня зовут Пётр",
			wantName:  "Пётр",
			wantStage: store.StageOfferingPoem,
		},
		{
			name:      "introduction phrase with trailing words",
			input:     "Меня зовут Анна Сергеевна",
			wantName:  "Анна",
			wantStage: store.StageOfferingPoem,
		},
		{
			name:      "short menya prefix",
			input:     "меня Олег",
			wantName:  "Олег",
			wantStage: store.StageOfferingPoem,
		},
		{
			name:      "bare name with punctuation",
			input:     "«Мария»!",
			wantName:  "Мария",
			wantStage: store.StageOfferingPoem,
		},
		{
			name:      "plain name",
			input:     "Игорь",
			wantName:  "Игорь",
			wantStage: store.StageOfferingPoem,
		},
	}

	m := newTestMachine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newTestSession(store.StageAwaitingName)
			outcome := m.Handle(session, testSnapshot(), tt.input)

			if !outcome.Handled {
				t.Fatal("expected the name turn to be handled")
			}
			if session.UserName != tt.wantName {
				t.Errorf("UserName = %q, want %q", session.UserName, tt.wantName)
			}
			if session.Stage != tt.wantStage {
				t.Errorf("Stage = %s, want %s", session.Stage, tt.wantStage)
			}
			if !strings.Contains(outcome.Reply, tt.wantName) {
				t.Errorf("reply %q does not address the user by name", outcome.Reply)
			}
		})
	}
}

func TestNameCaptureBlankInput(t *testing.T) {
	m := newTestMachine()
	session := newTestSession(store.StageAwaitingName)

	outcome := m.Handle(session, testSnapshot(), "   ")
	if !outcome.Handled {
		t.Fatal("expected blank input to be handled with a reprompt")
	}
	if session.UserName != "" {
		t.Errorf("UserName mutated to %q on blank input", session.UserName)
	}
	if session.Stage != store.StageAwaitingName {
		t.Errorf("Stage = %s, want unchanged AWAITING_NAME", session.Stage)
	}
}

func TestNameCapturePunctuationOnly(t *testing.T) {
	m := newTestMachine()
	session := newTestSession(store.StageAwaitingName)

	outcome := m.Handle(session, testSnapshot(), "?!...")
	if !outcome.Handled {
		t.Fatal("expected punctuation-only input to be handled")
	}
	if outcome.Reply != replyIntroduceAgain {
		t.Errorf("reply = %q, want the introduce-again reprompt", outcome.Reply)
	}
	if session.Stage != store.StageAwaitingName {
		t.Errorf("Stage = %s, want unchanged AWAITING_NAME", session.Stage)
	}
}

func TestGreetingOverride(t *testing.T) {
	m := newTestMachine()
	session := newTestSession(store.StageAfterPoem)
	session.MarkPoemShown("Няне")

	outcome := m.Handle(session, testSnapshot("Няне"), "привет")
	if !outcome.Handled {
		t.Fatal("expected the greeting to be handled")
	}
	if session.Stage != store.StageAwaitingName {
		t.Errorf("Stage = %s, want AWAITING_NAME", session.Stage)
	}
	if len(session.ShownPoemTitles) != 0 {
		t.Error("greeting must reset the shown poem set")
	}
}

func TestGreetingNotOverridingNameCapture(t *testing.T) {
	// In AWAITING_NAME a greeting word is a name candidate, not a restart.
	m := newTestMachine()
	session := newTestSession(store.StageAwaitingName)

	outcome := m.Handle(session, testSnapshot(), "привет")
	if !outcome.Handled {
		t.Fatal("expected the turn to be handled")
	}
	if session.UserName != "привет" {
		t.Errorf("UserName = %q, want the literal input captured", session.UserName)
	}
	if session.Stage != store.StageOfferingPoem {
		t.Errorf("Stage = %s, want OFFERING_POEM", session.Stage)
	}
}

func TestOfferAccepted(t *testing.T) {
	tests := []string{"да, хочу", "давай", "расскажи", "конечно!", "ага"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			m := newTestMachine()
			session := newTestSession(store.StageOfferingPoem)

			outcome := m.Handle(session, testSnapshot("Няне", "Узник"), input)
			if !outcome.Handled {
				t.Fatal("expected acceptance to deliver a poem")
			}
			if session.Stage != store.StageAfterPoem {
				t.Errorf("Stage = %s, want AFTER_POEM", session.Stage)
			}
			if len(session.ShownPoemTitles) != 1 {
				t.Errorf("ShownPoemTitles size = %d, want 1", len(session.ShownPoemTitles))
			}
			if !strings.Contains(outcome.Reply, "\n\n") {
				t.Errorf("reply %q is not in title-blank-text form", outcome.Reply)
			}
		})
	}
}

func TestOfferDeclined(t *testing.T) {
	tests := []string{"нет", "неа", "не хочу", "не надо, спасибо"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			m := newTestMachine()
			session := newTestSession(store.StageOfferingPoem)

			outcome := m.Handle(session, testSnapshot("Няне"), input)
			if !outcome.Handled {
				t.Fatal("expected the decline to be handled")
			}
			if outcome.Reply != replyOfferDeclined {
				t.Errorf("reply = %q, want the decline acknowledgement", outcome.Reply)
			}
			if session.Stage != store.StageOfferingPoem {
				t.Errorf("Stage = %s, want unchanged OFFERING_POEM", session.Stage)
			}
			if len(session.ShownPoemTitles) != 0 {
				t.Error("decline must not record a poem")
			}
		})
	}
}

func TestOfferUnrecognizedFallsThrough(t *testing.T) {
	m := newTestMachine()
	session := newTestSession(store.StageOfferingPoem)

	outcome := m.Handle(session, testSnapshot("Няне"), "кто такая Татьяна?")
	if outcome.Handled {
		t.Fatal("unrelated input must fall through to the resolution chain")
	}
	if session.Stage != store.StageOfferingPoem {
		t.Errorf("Stage = %s, fall-through must not transition", session.Stage)
	}
}

func TestAfterPoemMore(t *testing.T) {
	m := newTestMachine()
	session := newTestSession(store.StageAfterPoem)
	session.MarkPoemShown("Няне")

	outcome := m.Handle(session, testSnapshot("Няне", "Узник"), "расскажи ещё стих")
	if !outcome.Handled {
		t.Fatal("expected another poem to be delivered")
	}
	if session.Stage != store.StageAfterPoem {
		t.Errorf("Stage = %s, want AFTER_POEM", session.Stage)
	}
	if !session.ShownPoemTitles["Узник"] {
		t.Error("the unseen poem must be picked before any repeat")
	}
}

func TestAfterPoemDecline(t *testing.T) {
	m := newTestMachine()
	session := newTestSession(store.StageAfterPoem)
	session.MarkPoemShown("Няне")

	outcome := m.Handle(session, testSnapshot("Няне"), "нет, хватит")
	if !outcome.Handled {
		t.Fatal("expected the decline to be handled")
	}
	if outcome.Reply != replyEnough {
		t.Errorf("reply = %q, want the enough acknowledgement", outcome.Reply)
	}
	if session.Stage != store.StageAfterPoem {
		t.Errorf("Stage = %s, want unchanged AFTER_POEM", session.Stage)
	}
	if len(session.ShownPoemTitles) != 1 {
		t.Error("decline must not touch the exclusion set")
	}
}

func TestPoemExhaustionResetsSession(t *testing.T) {
	m := newTestMachine()
	session := newTestSession(store.StageAfterPoem)
	session.MarkPoemShown("Няне")
	session.MarkPoemShown("Узник")

	outcome := m.Handle(session, testSnapshot("Няне", "Узник"), "ещё стих прочитай")
	if !outcome.Handled {
		t.Fatal("expected a poem despite exhaustion")
	}
	// Exclusions were reset and only the re-delivered title recorded.
	if len(session.ShownPoemTitles) != 1 {
		t.Errorf("ShownPoemTitles size = %d, want 1 after reset", len(session.ShownPoemTitles))
	}
}

func TestNoPoemsAtAll(t *testing.T) {
	m := newTestMachine()
	session := newTestSession(store.StageOfferingPoem)

	outcome := m.Handle(session, testSnapshot(), "да")
	if !outcome.Handled {
		t.Fatal("expected a handled reply even with no poems")
	}
	if outcome.Reply != replyNoPoems {
		t.Errorf("reply = %q, want the no-poems notice", outcome.Reply)
	}
	if session.Stage != store.StageOfferingPoem {
		t.Errorf("Stage = %s, must stay put when nothing was delivered", session.Stage)
	}
}
