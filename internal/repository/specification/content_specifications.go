package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByAuthorID scopes content reads to a single author. Every scripted-content
// query is author-scoped.
type ByAuthorID struct {
	AuthorID uuid.UUID
}

func (s ByAuthorID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("author_id = ?", s.AuthorID)
}

// ByName filters by exact display name (authors, characters).
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// OrderByCategoryRank orders works the way the persona presents them:
// poems first, then long-form poetry, novels, novellas, drama and fairy
// tales; unknown categories last, then by year (NULLs last) and title.
type OrderByCategoryRank struct{}

func (s OrderByCategoryRank) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(`CASE category
		WHEN 'Стихи' THEN 1
		WHEN 'Поэмы' THEN 2
		WHEN 'Романы' THEN 3
		WHEN 'Повести' THEN 4
		WHEN 'Драмы' THEN 5
		WHEN 'Сказки' THEN 6
		ELSE 99
	END`).Order("year IS NULL").Order("year").Order("title")
}
