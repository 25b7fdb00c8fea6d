package unitofwork

import (
	"context"
	"fmt"

	"ai-writerbot-be/internal/repository/contract"
	"ai-writerbot-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil when outside one
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) AuthorRepository() contract.AuthorRepository {
	return implementation.NewAuthorRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WorkRepository() contract.WorkRepository {
	return implementation.NewWorkRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FaqRepository() contract.FaqRepository {
	return implementation.NewFaqRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PoemRepository() contract.PoemRepository {
	return implementation.NewPoemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CharacterRepository() contract.CharacterRepository {
	return implementation.NewCharacterRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TurnLogRepository() contract.TurnLogRepository {
	return implementation.NewTurnLogRepository(u.getDB())
}
