package store

import "github.com/google/uuid"

// Stage is the session's position in the scripted onboarding flow.
// The set is closed: every dialogue turn is handled under exactly one of these.
type Stage string

const (
	// StageIdle means no scripted onboarding is active; the generic
	// resolution chain governs the turn.
	StageIdle Stage = "IDLE"
	// StageAwaitingName means the persona asked for the user's name.
	StageAwaitingName Stage = "AWAITING_NAME"
	// StageOfferingPoem means the persona offered to recite a poem.
	StageOfferingPoem Stage = "OFFERING_POEM"
	// StageAfterPoem means at least one poem was delivered this session.
	StageAfterPoem Stage = "AFTER_POEM"
)

// Session represents the active dialogue state for one user, in memory.
// It is owned exclusively by the dialogue state machine: only turns of the
// same user mutate it, and it does not survive a process restart.
type Session struct {
	UserId   uuid.UUID `json:"user_id"`
	AuthorId uuid.UUID `json:"author_id"`
	Stage    Stage     `json:"stage"`
	UserName string    `json:"user_name"`

	// ShownPoemTitles holds titles already recited this session. A title is
	// recorded only after the poem was actually sent.
	ShownPoemTitles map[string]bool `json:"shown_poem_titles"`
}

// NewSession creates a session bound to an author, at the start of the
// scripted onboarding (name capture comes first).
func NewSession(userId, authorId uuid.UUID) *Session {
	return &Session{
		UserId:          userId,
		AuthorId:        authorId,
		Stage:           StageAwaitingName,
		ShownPoemTitles: make(map[string]bool),
	}
}

// MarkPoemShown records a delivered poem so the picker can avoid repeats.
func (s *Session) MarkPoemShown(title string) {
	if s.ShownPoemTitles == nil {
		s.ShownPoemTitles = make(map[string]bool)
	}
	s.ShownPoemTitles[title] = true
}

// ResetShownPoems clears the exclusion set, making every poem eligible again.
func (s *Session) ResetShownPoems() {
	s.ShownPoemTitles = make(map[string]bool)
}
