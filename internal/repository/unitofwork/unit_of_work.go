package unitofwork

import (
	"context"

	"ai-writerbot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AuthorRepository() contract.AuthorRepository
	WorkRepository() contract.WorkRepository
	FaqRepository() contract.FaqRepository
	PoemRepository() contract.PoemRepository
	CharacterRepository() contract.CharacterRepository
	TurnLogRepository() contract.TurnLogRepository
}
