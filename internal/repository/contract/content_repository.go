package contract

import (
	"context"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/internal/repository/specification"
)

type FaqRepository interface {
	Create(ctx context.Context, faq *entity.FaqEntry) error
	Update(ctx context.Context, faq *entity.FaqEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FaqEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FaqEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type PoemRepository interface {
	Create(ctx context.Context, poem *entity.PoemEntry) error
	Update(ctx context.Context, poem *entity.PoemEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PoemEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PoemEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type CharacterRepository interface {
	Create(ctx context.Context, character *entity.CharacterEntry) error
	Update(ctx context.Context, character *entity.CharacterEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CharacterEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CharacterEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type TurnLogRepository interface {
	Create(ctx context.Context, turnLog *entity.TurnLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TurnLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
