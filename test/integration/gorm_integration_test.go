package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/internal/repository/unitofwork"
	"ai-writerbot-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.AuthorRepository())
	assert.NotNil(t, uow.PoemRepository())
	assert.NotNil(t, uow.TurnLogRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Author Repository", func(t *testing.T) {
		count, err := uow.AuthorRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Author count: %d", count)
	})

	t.Run("Check Content Repositories", func(t *testing.T) {
		count, err := uow.PoemRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Poem count: %d", count)

		count, err = uow.FaqRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Faq count: %d", count)

		count, err = uow.CharacterRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Character count: %d", count)
	})

	t.Run("Check Transactional Turn Log", func(t *testing.T) {
		txUow := uowFactory.NewUnitOfWork(context.Background())
		err := txUow.Begin(context.Background())
		assert.NoError(t, err)
		defer txUow.Rollback()

		turnLog := &entity.TurnLog{
			Id:        uuid.New(),
			UserId:    uuid.New(),
			AuthorId:  uuid.New(),
			Source:    entity.TurnSourceFallback,
			Stage:     "OFFERING_POEM",
			CreatedAt: time.Now(),
		}

		err = txUow.TurnLogRepository().Create(context.Background(), turnLog)
		assert.NoError(t, err)

		count, err := txUow.TurnLogRepository().Count(context.Background())
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(1))

		// Rolled back by the deferred Rollback; nothing persists.
	})
}
