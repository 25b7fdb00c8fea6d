package mapper

import (
	"encoding/json"
	"time"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/internal/model"

	"gorm.io/datatypes"
)

// ContentMapper translates GORM models to domain entities and back. The
// jsonb columns (keywords, key facts) are decoded here so the rest of the
// code only ever sees typed slices.
type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func decodeKeywords(raw datatypes.JSON) []string {
	var keywords []string
	if len(raw) > 0 {
		// A malformed column yields an empty keyword list rather than an
		// error; the entry simply never matches.
		_ = json.Unmarshal(raw, &keywords)
	}
	return keywords
}

func encodeJSON(v interface{}) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}

// Author mappers

func (m *ContentMapper) AuthorToEntity(a *model.Author) *entity.Author {
	if a == nil {
		return nil
	}

	var facts []entity.KeyFact
	if len(a.KeyFacts) > 0 {
		_ = json.Unmarshal(a.KeyFacts, &facts)
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Author{
		Id:               a.Id,
		Name:             a.Name,
		ShortBio:         a.ShortBio,
		Bio:              a.Bio,
		Era:              a.Era,
		KeyFacts:         facts,
		StyleDescription: a.StyleDescription,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *ContentMapper) AuthorToModel(a *entity.Author) *model.Author {
	if a == nil {
		return nil
	}
	return &model.Author{
		Id:               a.Id,
		Name:             a.Name,
		ShortBio:         a.ShortBio,
		Bio:              a.Bio,
		Era:              a.Era,
		KeyFacts:         encodeJSON(a.KeyFacts),
		StyleDescription: a.StyleDescription,
		CreatedAt:        a.CreatedAt,
	}
}

func (m *ContentMapper) WorkToEntity(w *model.Work) *entity.Work {
	if w == nil {
		return nil
	}
	return &entity.Work{
		Id:       w.Id,
		AuthorId: w.AuthorId,
		Title:    w.Title,
		Year:     w.Year,
		Category: w.Category,
		Summary:  w.Summary,
		Excerpt:  w.Excerpt,
	}
}

func (m *ContentMapper) WorkToModel(w *entity.Work) *model.Work {
	if w == nil {
		return nil
	}
	return &model.Work{
		Id:       w.Id,
		AuthorId: w.AuthorId,
		Title:    w.Title,
		Year:     w.Year,
		Category: w.Category,
		Summary:  w.Summary,
		Excerpt:  w.Excerpt,
	}
}

// Scripted content mappers

func (m *ContentMapper) FaqToEntity(f *model.FaqEntry) *entity.FaqEntry {
	if f == nil {
		return nil
	}
	return &entity.FaqEntry{
		Id:       f.Id,
		AuthorId: f.AuthorId,
		Question: f.Question,
		Answer:   f.Answer,
		Keywords: decodeKeywords(f.Keywords),
	}
}

func (m *ContentMapper) FaqToModel(f *entity.FaqEntry) *model.FaqEntry {
	if f == nil {
		return nil
	}
	return &model.FaqEntry{
		Id:       f.Id,
		AuthorId: f.AuthorId,
		Question: f.Question,
		Answer:   f.Answer,
		Keywords: encodeJSON(f.Keywords),
	}
}

func (m *ContentMapper) PoemToEntity(p *model.Poem) *entity.PoemEntry {
	if p == nil {
		return nil
	}
	return &entity.PoemEntry{
		Id:       p.Id,
		AuthorId: p.AuthorId,
		Title:    p.Title,
		Text:     p.Text,
		Keywords: decodeKeywords(p.Keywords),
	}
}

func (m *ContentMapper) PoemToModel(p *entity.PoemEntry) *model.Poem {
	if p == nil {
		return nil
	}
	return &model.Poem{
		Id:       p.Id,
		AuthorId: p.AuthorId,
		Title:    p.Title,
		Text:     p.Text,
		Keywords: encodeJSON(p.Keywords),
	}
}

func (m *ContentMapper) CharacterToEntity(c *model.Character) *entity.CharacterEntry {
	if c == nil {
		return nil
	}
	return &entity.CharacterEntry{
		Id:          c.Id,
		AuthorId:    c.AuthorId,
		Name:        c.Name,
		Description: c.Description,
		Keywords:    decodeKeywords(c.Keywords),
	}
}

func (m *ContentMapper) CharacterToModel(c *entity.CharacterEntry) *model.Character {
	if c == nil {
		return nil
	}
	return &model.Character{
		Id:          c.Id,
		AuthorId:    c.AuthorId,
		Name:        c.Name,
		Description: c.Description,
		Keywords:    encodeJSON(c.Keywords),
	}
}

// TurnLog mappers

func (m *ContentMapper) TurnLogToModel(t *entity.TurnLog) *model.TurnLog {
	if t == nil {
		return nil
	}
	return &model.TurnLog{
		Id:        t.Id,
		UserId:    t.UserId,
		AuthorId:  t.AuthorId,
		Source:    t.Source,
		Stage:     t.Stage,
		CreatedAt: t.CreatedAt,
	}
}

func (m *ContentMapper) TurnLogToEntity(t *model.TurnLog) *entity.TurnLog {
	if t == nil {
		return nil
	}
	return &entity.TurnLog{
		Id:        t.Id,
		UserId:    t.UserId,
		AuthorId:  t.AuthorId,
		Source:    t.Source,
		Stage:     t.Stage,
		CreatedAt: t.CreatedAt,
	}
}
