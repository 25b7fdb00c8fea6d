package implementation

import (
	"context"
	"errors"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/internal/mapper"
	"ai-writerbot-be/internal/model"
	"ai-writerbot-be/internal/repository/contract"
	"ai-writerbot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewAuthorRepository(db *gorm.DB) contract.AuthorRepository {
	return &AuthorRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AuthorRepositoryImpl) Create(ctx context.Context, author *entity.Author) error {
	m := r.mapper.AuthorToModel(author)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*author = *r.mapper.AuthorToEntity(m)
	return nil
}

func (r *AuthorRepositoryImpl) Update(ctx context.Context, author *entity.Author) error {
	m := r.mapper.AuthorToModel(author)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*author = *r.mapper.AuthorToEntity(m)
	return nil
}

func (r *AuthorRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Author{}, id).Error
}

func (r *AuthorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Author, error) {
	var m model.Author
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AuthorToEntity(&m), nil
}

func (r *AuthorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Author, error) {
	var models []*model.Author
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Author, len(models))
	for i, m := range models {
		entities[i] = r.mapper.AuthorToEntity(m)
	}
	return entities, nil
}

func (r *AuthorRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Author{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
