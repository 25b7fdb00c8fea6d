// Package state implements the per-session dialogue state machine. It
// intercepts scripted onboarding turns (greeting, name capture, the poem
// offer/decline loop) before the content resolution chain runs. Interception
// is a precedence layer, not an exhaustive consumer: any input the active
// stage does not recognize falls through to the chain unchanged.
package state

import (
	"fmt"
	"strings"

	"ai-writerbot-be/pkg/content"
	"ai-writerbot-be/pkg/dialog/match"
	"ai-writerbot-be/pkg/dialog/pick"
	"ai-writerbot-be/pkg/store"
)

const (
	replyNameNotHeard   = "Не расслышал имени — повторите, пожалуйста."
	replyIntroduceAgain = "Давайте всё же представимся — как к вам обращаться?"
	replyOfferDeclined  = "Как скажешь! Но знай: мой стих всегда на изготовке, стоит лишь щёлкнуть веером."
	replyEnough         = "Хорошо, приберегу рифмы до лучшего случая. Но стоит вам мигнуть — и я снова в строю!"
	replyNoPoems        = "Похоже, сейчас подходящих стихов под рукой нет."
)

var greetings = map[string]bool{
	"привет":       true,
	"здравствуй":   true,
	"здравствуйте": true,
}

// Outcome is the state machine's verdict on one turn. Handled=false means
// the turn falls through to the resolution chain with the session untouched.
type Outcome struct {
	Handled bool
	Reply   string
}

// Machine mutates the session it is given; callers own turn serialization
// per user.
type Machine struct {
	picker *pick.Picker
}

func NewMachine(picker *pick.Picker) *Machine {
	return &Machine{picker: picker}
}

// Handle runs one input through the transition table for the session's
// current stage.
func (m *Machine) Handle(session *store.Session, snap *content.Snapshot, input string) Outcome {
	normalized := match.Normalize(input)

	// Greeting overrides any stage except AWAITING_NAME, where the greeting
	// itself would otherwise be captured as a name. Guard order matters.
	if greetings[normalized] && session.Stage != store.StageAwaitingName {
		session.Stage = store.StageAwaitingName
		session.ResetShownPoems()
		return Outcome{Handled: true, Reply: m.greeting(snap)}
	}

	switch session.Stage {
	case store.StageAwaitingName:
		return m.captureName(session, input)
	case store.StageOfferingPoem:
		return m.handleOffer(session, snap, normalized)
	case store.StageAfterPoem:
		return m.handleAfterPoem(session, snap, normalized)
	}

	return Outcome{}
}

// Greeting returns the scripted opener sent when a dialogue starts.
func (m *Machine) Greeting(snap *content.Snapshot) string {
	return m.greeting(snap)
}

func (m *Machine) greeting(snap *content.Snapshot) string {
	return fmt.Sprintf("Привет! Меня зовут %s! Как тебя зовут?", snap.Author.Name)
}

func (m *Machine) captureName(session *store.Session, input string) Outcome {
	cleaned := strings.TrimSpace(input)
	if cleaned == "" {
		return Outcome{Handled: true, Reply: replyNameNotHeard}
	}

	lower := strings.ToLower(cleaned)
	candidate := cleaned
	if idx := strings.Index(lower, "меня зовут"); idx >= 0 {
		candidate = strings.TrimSpace(cleaned[idx+len("меня зовут"):])
	} else if strings.HasPrefix(lower, "меня") {
		if fields := strings.Fields(cleaned); len(fields) >= 2 {
			candidate = fields[1]
		}
	}

	candidate = match.TrimPunctuation(candidate)
	if candidate == "" {
		return Outcome{Handled: true, Reply: replyIntroduceAgain}
	}

	name := match.FirstToken(candidate)
	session.UserName = name
	session.Stage = store.StageOfferingPoem
	return Outcome{Handled: true, Reply: fmt.Sprintf("Привет, %s! Хочешь, расскажу стих?", name)}
}

func (m *Machine) handleOffer(session *store.Session, snap *content.Snapshot, normalized string) Outcome {
	tokens := match.Tokenize(normalized)
	if match.HasAnyToken(tokens, "нет", "неа") ||
		strings.Contains(normalized, "не хочу") ||
		strings.Contains(normalized, "не надо") {
		return Outcome{Handled: true, Reply: replyOfferDeclined}
	}

	if match.ContainsAny(normalized, []string{"расскажи", "давай", "прочитай"}) ||
		match.HasAnyToken(tokens, "да", "хочу", "конечно", "ага") {
		return m.sendRandomPoem(session, snap)
	}

	return Outcome{}
}

func (m *Machine) handleAfterPoem(session *store.Session, snap *content.Snapshot, normalized string) Outcome {
	if strings.Contains(normalized, "ещё") || strings.Contains(normalized, "еще") {
		if match.ContainsAny(normalized, []string{"расскажи", "прочитай", "стих"}) {
			return m.sendRandomPoem(session, snap)
		}
	}

	tokens := match.Tokenize(normalized)
	if match.HasAnyToken(tokens, "нет", "хватит", "достаточно") ||
		strings.Contains(normalized, "не надо") {
		return Outcome{Handled: true, Reply: replyEnough}
	}

	return Outcome{}
}

// sendRandomPoem picks an unseen poem and records it into the session's
// exclusion set. On exhaustion the picker signals a reset and retries the
// full set, so this only fails when the author has no poems at all. The
// stage advances only on a successful delivery.
func (m *Machine) sendRandomPoem(session *store.Session, snap *content.Snapshot) Outcome {
	result, err := m.picker.Pick(snap.Poems, session.ShownPoemTitles)
	if err != nil {
		return Outcome{Handled: true, Reply: replyNoPoems}
	}

	if result.ExclusionReset {
		session.ResetShownPoems()
	}
	session.MarkPoemShown(result.Poem.Title)
	session.Stage = store.StageAfterPoem

	return Outcome{Handled: true, Reply: fmt.Sprintf("%s\n\n%s", result.Poem.Title, result.Poem.Text)}
}
