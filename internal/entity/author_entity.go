package entity

import (
	"time"

	"github.com/google/uuid"
)

// KeyFact is one dated biography fact, rendered in bio views and woven into
// the persona system prompt.
type KeyFact struct {
	Year string `json:"year"`
	Fact string `json:"fact"`
}

// Author is an immutable per-request snapshot of a literary figure.
type Author struct {
	Id               uuid.UUID
	Name             string
	ShortBio         string
	Bio              string
	Era              string
	KeyFacts         []KeyFact
	StyleDescription string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// Work is a single catalogued work of an author.
type Work struct {
	Id       uuid.UUID
	AuthorId uuid.UUID
	Title    string
	Year     *int
	Category string
	Summary  string
	Excerpt  *string
}
