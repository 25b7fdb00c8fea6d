package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"ai-writerbot-be/internal/dto"
	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/internal/pkg/logger"
	"ai-writerbot-be/internal/pkg/serverutils"
	"ai-writerbot-be/internal/repository/memory"
	"ai-writerbot-be/pkg/content"
	"ai-writerbot-be/pkg/dialog/match"
	"ai-writerbot-be/pkg/dialog/resolve"
	"ai-writerbot-be/pkg/dialog/state"
	"ai-writerbot-be/pkg/events"
	"ai-writerbot-be/pkg/nats"
	"ai-writerbot-be/pkg/persona"
	"ai-writerbot-be/pkg/store"

	"github.com/google/uuid"
)

type IDialogService interface {
	Start(ctx context.Context, userId uuid.UUID, req *dto.StartDialogRequest) (*dto.StartDialogResponse, error)
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	Stop(ctx context.Context, userId uuid.UUID) (*dto.StopDialogResponse, error)
}

// dialogService runs one dialogue turn to completion: state machine first,
// then the resolution chain, then the generative fallback. Turns of the same
// user are serialized with a per-user lock; turns of different users never
// contend. The fallback call blocks on network I/O and runs without any
// session store lock held beyond the user's own.
type dialogService struct {
	provider         content.Provider
	sessionRepo      *memory.SessionRepository
	machine          *state.Machine
	writer           persona.Writer
	publisherService IPublisherService
	eventPublisher   *nats.Publisher
	sysLogger        logger.ILogger

	userLocks sync.Map // uuid.UUID -> *sync.Mutex
}

func NewDialogService(
	provider content.Provider,
	sessionRepo *memory.SessionRepository,
	machine *state.Machine,
	writer persona.Writer,
	publisherService IPublisherService,
	eventPublisher *nats.Publisher,
	sysLogger logger.ILogger,
) IDialogService {
	return &dialogService{
		provider:         provider,
		sessionRepo:      sessionRepo,
		machine:          machine,
		writer:           writer,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		sysLogger:        sysLogger,
	}
}

func (s *dialogService) lockUser(userId uuid.UUID) *sync.Mutex {
	mu, _ := s.userLocks.LoadOrStore(userId, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Start binds the user to an author and opens the scripted onboarding.
// Selecting a different author supersedes any existing session.
func (s *dialogService) Start(ctx context.Context, userId uuid.UUID, req *dto.StartDialogRequest) (*dto.StartDialogResponse, error) {
	mu := s.lockUser(userId)
	mu.Lock()
	defer mu.Unlock()

	snap, err := s.provider.Snapshot(ctx, req.AuthorId)
	if err != nil {
		return nil, err
	}
	if snap == nil || snap.Author == nil {
		return nil, serverutils.NewNotFoundError("Author not found")
	}

	session := store.NewSession(userId, req.AuthorId)
	s.sessionRepo.Save(session)

	s.publishDialogEvent(ctx, "DIALOG_STARTED", userId, req.AuthorId)

	return &dto.StartDialogResponse{
		AuthorId: req.AuthorId,
		Greeting: s.machine.Greeting(snap),
		Stage:    string(session.Stage),
	}, nil
}

// SendMessage processes one inbound message into one reply.
func (s *dialogService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	mu := s.lockUser(userId)
	mu.Lock()
	defer mu.Unlock()

	session, found := s.sessionRepo.Get(userId)
	if !found {
		return nil, serverutils.NewBadRequestError("No active dialog. Start one first")
	}

	snap, err := s.provider.Snapshot(ctx, session.AuthorId)
	if err != nil {
		return nil, err
	}
	if snap == nil || snap.Author == nil {
		return nil, serverutils.NewNotFoundError("Author not found")
	}

	reply, source := s.processTurn(ctx, session, snap, req.Message)

	// Persist whatever the turn did to the session, including no-op turns
	// (Save also refreshes the idle expiration).
	s.sessionRepo.Save(session)

	if s.sysLogger != nil {
		s.sysLogger.Info("dialog", "Turn processed", map[string]interface{}{
			"user_id":   userId.String(),
			"author_id": session.AuthorId.String(),
			"stage":     string(session.Stage),
			"source":    source,
		})
	}

	s.publishTurnProcessed(ctx, session, source)

	return &dto.SendMessageResponse{
		Reply:  reply,
		Stage:  string(session.Stage),
		Source: source,
	}, nil
}

// processTurn is the precedence pipeline: scripted state machine, then the
// content resolution chain, then generation. The fallback adapter returns
// apology text on upstream failure and never an error, so a failed
// generation leaves the stage untouched.
func (s *dialogService) processTurn(ctx context.Context, session *store.Session, snap *content.Snapshot, input string) (reply string, source string) {
	outcome := s.machine.Handle(session, snap, input)
	if outcome.Handled {
		return outcome.Reply, entity.TurnSourceStateMachine
	}

	result := resolve.Resolve(snap, match.Normalize(input))
	if result.Matched {
		return result.Reply, result.Source
	}

	works, err := s.provider.GetAuthorWorks(ctx, session.AuthorId)
	if err != nil {
		log.Printf("[WARN] Failed to load works for prompt, generating without catalogue: %v", err)
		works = nil
	}

	return s.writer.GenerateReply(ctx, snap.Author, works, input), entity.TurnSourceFallback
}

// Stop resets the session. Stopping with no active session is not an error.
func (s *dialogService) Stop(ctx context.Context, userId uuid.UUID) (*dto.StopDialogResponse, error) {
	mu := s.lockUser(userId)
	mu.Lock()
	defer mu.Unlock()

	session, found := s.sessionRepo.Get(userId)
	if found {
		s.publishDialogEvent(ctx, "DIALOG_STOPPED", userId, session.AuthorId)
	}
	s.sessionRepo.Delete(userId)

	return &dto.StopDialogResponse{
		Message: "Диалог завершён. Используйте /start, чтобы начать заново.",
	}, nil
}

func (s *dialogService) publishTurnProcessed(ctx context.Context, session *store.Session, source string) {
	if s.publisherService == nil {
		return
	}

	payload := dto.PublishTurnProcessedMessage{
		UserId:      session.UserId,
		AuthorId:    session.AuthorId,
		Source:      source,
		Stage:       string(session.Stage),
		ProcessedAt: time.Now(),
	}
	msgJson, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal turn event: %v", err)
		return
	}

	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		log.Printf("[WARN] Failed to publish turn event: %v", err)
	}
}

func (s *dialogService) publishDialogEvent(ctx context.Context, eventType string, userId, authorId uuid.UUID) {
	if s.eventPublisher == nil {
		return
	}

	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"user_id":   userId,
			"author_id": authorId,
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		log.Printf("[WARN] Failed to publish %s event: %v", eventType, err)
	}
}
