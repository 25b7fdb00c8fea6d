package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-writerbot-be/internal/dto"
	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/internal/pkg/logger"
	"ai-writerbot-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains turn events off the in-process bus and persists
// them as turn_logs rows, keeping analytics writes off the turn path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	turnLogger logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	turnLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		turnLogger: turnLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishTurnProcessedMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal turn event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	processedAt := payload.ProcessedAt
	if processedAt.IsZero() {
		processedAt = time.Now()
	}

	turnLog := &entity.TurnLog{
		Id:        uuid.New(),
		UserId:    payload.UserId,
		AuthorId:  payload.AuthorId,
		Source:    payload.Source,
		Stage:     payload.Stage,
		CreatedAt: processedAt,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TurnLogRepository().Create(ctx, turnLog); err != nil {
		log.Printf("[ERROR] Failed to persist turn log for user %s: %v", payload.UserId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	if cs.turnLogger != nil {
		cs.turnLogger.Info("turns", "Turn persisted", map[string]interface{}{
			"user_id":   payload.UserId.String(),
			"author_id": payload.AuthorId.String(),
			"source":    payload.Source,
			"stage":     payload.Stage,
		})
	}

	msg.Ack()
}
