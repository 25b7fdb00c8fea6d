package dto

import (
	"time"

	"github.com/google/uuid"
)

type ListAuthorsResponse struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ShortBio string    `json:"short_bio"`
	Era      string    `json:"era"`
}

type KeyFactItem struct {
	Year string `json:"year"`
	Fact string `json:"fact"`
}

type ShowAuthorResponse struct {
	Id        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	ShortBio  string        `json:"short_bio"`
	Bio       string        `json:"bio"`
	Era       string        `json:"era"`
	KeyFacts  []KeyFactItem `json:"key_facts"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at"`
}

// AuthorBioResponse is the long-form biography view with dated key facts.
type AuthorBioResponse struct {
	Id       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	Bio      string        `json:"bio"`
	Era      string        `json:"era"`
	KeyFacts []KeyFactItem `json:"key_facts"`
}

// WorkItem carries one catalogued work inside its category group.
type WorkItem struct {
	Title   string  `json:"title"`
	Year    *int    `json:"year"`
	Summary string  `json:"summary"`
	Excerpt *string `json:"excerpt"`
}

type WorkGroupResponse struct {
	Category string     `json:"category"`
	Works    []WorkItem `json:"works"`
}

type RandomPoemResponse struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}
