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

type CharacterRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewCharacterRepository(db *gorm.DB) contract.CharacterRepository {
	return &CharacterRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *CharacterRepositoryImpl) Create(ctx context.Context, character *entity.CharacterEntry) error {
	m := r.mapper.CharacterToModel(character)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*character = *r.mapper.CharacterToEntity(m)
	return nil
}

func (r *CharacterRepositoryImpl) Update(ctx context.Context, character *entity.CharacterEntry) error {
	m := r.mapper.CharacterToModel(character)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*character = *r.mapper.CharacterToEntity(m)
	return nil
}

func (r *CharacterRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CharacterEntry, error) {
	var m model.Character
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CharacterToEntity(&m), nil
}

func (r *CharacterRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CharacterEntry, error) {
	var models []*model.Character
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CharacterEntry, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CharacterToEntity(m)
	}
	return entities, nil
}

func (r *CharacterRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Character{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
