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

type FaqRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewFaqRepository(db *gorm.DB) contract.FaqRepository {
	return &FaqRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *FaqRepositoryImpl) Create(ctx context.Context, faq *entity.FaqEntry) error {
	m := r.mapper.FaqToModel(faq)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.FaqToEntity(m)
	return nil
}

func (r *FaqRepositoryImpl) Update(ctx context.Context, faq *entity.FaqEntry) error {
	m := r.mapper.FaqToModel(faq)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.FaqToEntity(m)
	return nil
}

func (r *FaqRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FaqEntry, error) {
	var m model.FaqEntry
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FaqToEntity(&m), nil
}

func (r *FaqRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FaqEntry, error) {
	var models []*model.FaqEntry
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.FaqEntry, len(models))
	for i, m := range models {
		entities[i] = r.mapper.FaqToEntity(m)
	}
	return entities, nil
}

func (r *FaqRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.FaqEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
