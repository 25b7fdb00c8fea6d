// Package content is the read-only facade over the persistent content store.
// All reads are author-scoped; an absent author yields nil results, never an
// error, so callers can turn "not found" into a user-facing message without
// unwinding the turn.
package content

import (
	"context"

	"ai-writerbot-be/internal/entity"

	"github.com/google/uuid"
)

// WorkGroup is one category of an author's works, in presentation order.
type WorkGroup struct {
	Category string        `json:"category"`
	Works    []entity.Work `json:"works"`
}

// Snapshot bundles everything a single dialogue turn needs. It is assembled
// once per turn so the state machine and resolution chain stay pure
// functions of (session, snapshot, input).
type Snapshot struct {
	Author     *entity.Author          `json:"author"`
	Poems      []entity.PoemEntry      `json:"poems"`
	Faq        []entity.FaqEntry       `json:"faq"`
	Characters []entity.CharacterEntry `json:"characters"`
}

// Provider is the content repository contract consumed by the dialogue core.
type Provider interface {
	GetAuthor(ctx context.Context, id uuid.UUID) (*entity.Author, error)
	ListAuthors(ctx context.Context) ([]*entity.Author, error)
	GetAuthorWorks(ctx context.Context, id uuid.UUID) ([]WorkGroup, error)
	ListFaq(ctx context.Context, id uuid.UUID) ([]entity.FaqEntry, error)
	ListPoems(ctx context.Context, id uuid.UUID) ([]entity.PoemEntry, error)
	GetPoemTitles(ctx context.Context, id uuid.UUID) ([]string, error)
	ListCharacters(ctx context.Context, id uuid.UUID) ([]entity.CharacterEntry, error)
	PickRandomPoem(ctx context.Context, id uuid.UUID, excludeTitles map[string]bool) (*entity.PoemEntry, error)
	Snapshot(ctx context.Context, id uuid.UUID) (*Snapshot, error)
}
