package bootstrap

import (
	"context"
	"log"
	"math/rand"
	"time"

	"ai-writerbot-be/internal/config"
	"ai-writerbot-be/internal/controller"
	"ai-writerbot-be/internal/pkg/logger"
	"ai-writerbot-be/internal/repository/memory"
	"ai-writerbot-be/internal/repository/unitofwork"
	"ai-writerbot-be/internal/service"
	"ai-writerbot-be/pkg/content"
	"ai-writerbot-be/pkg/dialog/pick"
	"ai-writerbot-be/pkg/dialog/state"
	"ai-writerbot-be/pkg/llm/factory"
	"ai-writerbot-be/pkg/persona"

	pktNats "ai-writerbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthorController controller.IAuthorController
	DialogController controller.IDialogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		llmBaseURL(cfg),
		cfg.Ai.OpenAIApiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Initialize In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	redisUp := true
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		redisUp = false
	}

	// 3. Domain Components
	picker := pick.NewPicker(rand.New(rand.NewSource(time.Now().UnixNano())))

	var provider content.Provider = content.NewRepositoryProvider(uowFactory, picker)
	if redisUp {
		provider = content.NewCachedProvider(provider, rdb, cfg.Cache.ContentTTL)
		log.Printf("[INFO] Content snapshot cache enabled (TTL %s)", cfg.Cache.ContentTTL)
	}

	machine := state.NewMachine(picker)
	writer := persona.NewWriter(llmProvider)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.TurnTopicName, pubSub)
	turnLogger := logger.NewIsolatedLogger("logs/turns.log")
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.TurnTopicName,
		uowFactory,
		turnLogger,
	)

	authorService := service.NewAuthorService(provider)
	dialogService := service.NewDialogService(
		provider,
		sessionRepo,
		machine,
		writer,
		publisherService,
		natsPub,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AuthorController: controller.NewAuthorController(authorService),
		DialogController: controller.NewDialogController(dialogService),

		ConsumerService: consumerService,
	}
}

func llmBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.OpenAIBaseURL
}
