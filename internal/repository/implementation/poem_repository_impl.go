package implementation

import (
	"context"
	"errors"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/internal/mapper"
	"ai-writerbot-be/internal/model"
	"ai-writerbot-be/internal/repository/contract"
	"ai-writerbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PoemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewPoemRepository(db *gorm.DB) contract.PoemRepository {
	return &PoemRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *PoemRepositoryImpl) Create(ctx context.Context, poem *entity.PoemEntry) error {
	m := r.mapper.PoemToModel(poem)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*poem = *r.mapper.PoemToEntity(m)
	return nil
}

func (r *PoemRepositoryImpl) Update(ctx context.Context, poem *entity.PoemEntry) error {
	m := r.mapper.PoemToModel(poem)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*poem = *r.mapper.PoemToEntity(m)
	return nil
}

func (r *PoemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PoemEntry, error) {
	var m model.Poem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PoemToEntity(&m), nil
}

func (r *PoemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PoemEntry, error) {
	var models []*model.Poem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PoemEntry, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PoemToEntity(m)
	}
	return entities, nil
}

func (r *PoemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Poem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
