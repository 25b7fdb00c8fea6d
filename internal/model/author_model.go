package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Author holds the persona profile. KeyFacts is a JSON array of
// {year, fact} pairs, kept as jsonb so the seeder can upsert it atomically.
type Author struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string         `gorm:"type:text;not null;uniqueIndex"`
	ShortBio         string         `gorm:"type:text;not null"`
	Bio              string         `gorm:"type:text;not null"`
	Era              string         `gorm:"type:text;not null"`
	KeyFacts         datatypes.JSON `gorm:"type:jsonb;not null"`
	StyleDescription string         `gorm:"type:text;not null"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (Author) TableName() string {
	return "authors"
}

type Work struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AuthorId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_works_author_title"`
	Title    string    `gorm:"type:text;not null;uniqueIndex:idx_works_author_title"`
	Year     *int      `gorm:"type:int"`
	Category string    `gorm:"type:text;not null"`
	Summary  string    `gorm:"type:text;not null"`
	Excerpt  *string   `gorm:"type:text"`
}

func (Work) TableName() string {
	return "works"
}
