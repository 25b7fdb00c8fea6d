package contract

import (
	"context"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *entity.Author) error
	Update(ctx context.Context, author *entity.Author) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Author, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Author, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type WorkRepository interface {
	Create(ctx context.Context, work *entity.Work) error
	Update(ctx context.Context, work *entity.Work) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Work, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Work, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
