package entity

import "github.com/google/uuid"

// Scripted content entities. Keywords are stored pre-normalized to lowercase;
// matching is substring containment inside the lowercased user message.

type FaqEntry struct {
	Id       uuid.UUID
	AuthorId uuid.UUID
	Question string
	Answer   string
	Keywords []string
}

type PoemEntry struct {
	Id       uuid.UUID
	AuthorId uuid.UUID
	Title    string
	Text     string
	Keywords []string
}

type CharacterEntry struct {
	Id          uuid.UUID
	AuthorId    uuid.UUID
	Name        string
	Description string
	Keywords    []string
}
