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

type WorkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewWorkRepository(db *gorm.DB) contract.WorkRepository {
	return &WorkRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *WorkRepositoryImpl) Create(ctx context.Context, work *entity.Work) error {
	m := r.mapper.WorkToModel(work)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*work = *r.mapper.WorkToEntity(m)
	return nil
}

func (r *WorkRepositoryImpl) Update(ctx context.Context, work *entity.Work) error {
	m := r.mapper.WorkToModel(work)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*work = *r.mapper.WorkToEntity(m)
	return nil
}

func (r *WorkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Work, error) {
	var m model.Work
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.WorkToEntity(&m), nil
}

func (r *WorkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Work, error) {
	var models []*model.Work
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Work, len(models))
	for i, m := range models {
		entities[i] = r.mapper.WorkToEntity(m)
	}
	return entities, nil
}

func (r *WorkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Work{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
