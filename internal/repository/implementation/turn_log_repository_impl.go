package implementation

import (
	"context"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/internal/mapper"
	"ai-writerbot-be/internal/model"
	"ai-writerbot-be/internal/repository/contract"
	"ai-writerbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TurnLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewTurnLogRepository(db *gorm.DB) contract.TurnLogRepository {
	return &TurnLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *TurnLogRepositoryImpl) Create(ctx context.Context, turnLog *entity.TurnLog) error {
	m := r.mapper.TurnLogToModel(turnLog)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*turnLog = *r.mapper.TurnLogToEntity(m)
	return nil
}

func (r *TurnLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TurnLog, error) {
	var models []*model.TurnLog
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.TurnLog, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TurnLogToEntity(m)
	}
	return entities, nil
}

func (r *TurnLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.TurnLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
