package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Scripted content tables. Keywords are jsonb arrays of pre-lowercased
// strings; normalization happens at seed time, not at query time.

type FaqEntry struct {
	Id       uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AuthorId uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_faq_author_question"`
	Question string         `gorm:"type:text;not null;uniqueIndex:idx_faq_author_question"`
	Answer   string         `gorm:"type:text;not null"`
	Keywords datatypes.JSON `gorm:"type:jsonb;not null"`
}

func (FaqEntry) TableName() string {
	return "faq_entries"
}

type Poem struct {
	Id       uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AuthorId uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_poems_author_title"`
	Title    string         `gorm:"type:text;not null;uniqueIndex:idx_poems_author_title"`
	Text     string         `gorm:"type:text;not null"`
	Keywords datatypes.JSON `gorm:"type:jsonb;not null"`
}

func (Poem) TableName() string {
	return "poems"
}

type Character struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AuthorId    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_characters_author_name"`
	Name        string         `gorm:"type:text;not null;uniqueIndex:idx_characters_author_name"`
	Description string         `gorm:"type:text;not null"`
	Keywords    datatypes.JSON `gorm:"type:jsonb;not null"`
}

func (Character) TableName() string {
	return "characters"
}
