package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"ai-writerbot-be/internal/dto"
	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/internal/pkg/serverutils"
	"ai-writerbot-be/internal/repository/memory"
	"ai-writerbot-be/pkg/content"
	"ai-writerbot-be/pkg/dialog/pick"
	"ai-writerbot-be/pkg/dialog/state"
	"ai-writerbot-be/pkg/store"

	"github.com/google/uuid"
)

// fakeContentProvider serves a single in-memory author snapshot.
type fakeContentProvider struct {
	authorId uuid.UUID
	snap     *content.Snapshot
}

func (f *fakeContentProvider) GetAuthor(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	if id != f.authorId {
		return nil, nil
	}
	return f.snap.Author, nil
}

func (f *fakeContentProvider) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	return []*entity.Author{f.snap.Author}, nil
}

func (f *fakeContentProvider) GetAuthorWorks(ctx context.Context, id uuid.UUID) ([]content.WorkGroup, error) {
	return nil, nil
}

func (f *fakeContentProvider) ListFaq(ctx context.Context, id uuid.UUID) ([]entity.FaqEntry, error) {
	return f.snap.Faq, nil
}

func (f *fakeContentProvider) ListPoems(ctx context.Context, id uuid.UUID) ([]entity.PoemEntry, error) {
	return f.snap.Poems, nil
}

func (f *fakeContentProvider) GetPoemTitles(ctx context.Context, id uuid.UUID) ([]string, error) {
	titles := make([]string, 0, len(f.snap.Poems))
	for _, p := range f.snap.Poems {
		titles = append(titles, p.Title)
	}
	return titles, nil
}

func (f *fakeContentProvider) ListCharacters(ctx context.Context, id uuid.UUID) ([]entity.CharacterEntry, error) {
	return f.snap.Characters, nil
}

func (f *fakeContentProvider) PickRandomPoem(ctx context.Context, id uuid.UUID, excludeTitles map[string]bool) (*entity.PoemEntry, error) {
	if len(f.snap.Poems) == 0 {
		return nil, nil
	}
	return &f.snap.Poems[0], nil
}

func (f *fakeContentProvider) Snapshot(ctx context.Context, id uuid.UUID) (*content.Snapshot, error) {
	if id != f.authorId {
		return nil, nil
	}
	return f.snap, nil
}

// fakeWriter counts fallback invocations and returns a fixed reply.
type fakeWriter struct {
	calls int
	reply string
}

func (f *fakeWriter) GenerateReply(ctx context.Context, author *entity.Author, works []content.WorkGroup, userMessage string) string {
	f.calls++
	return f.reply
}

// fakePublisher records published turn payloads.
type fakePublisher struct {
	published [][]byte
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.published = append(f.published, payload)
	return nil
}

type dialogFixture struct {
	service   IDialogService
	provider  *fakeContentProvider
	writer    *fakeWriter
	publisher *fakePublisher
	authorId  uuid.UUID
	userId    uuid.UUID
}

func newDialogFixture() *dialogFixture {
	authorId := uuid.New()
	provider := &fakeContentProvider{
		authorId: authorId,
		snap: &content.Snapshot{
			Author: &entity.Author{Id: authorId, Name: "Александр Сергеевич Пушкин"},
			Poems: []entity.PoemEntry{
				{Title: "Няне", Text: "Подруга дней моих суровых...", Keywords: []string{"няне"}},
			},
			Faq: []entity.FaqEntry{
				{Answer: "Я родился в Москве 6 июня 1799 года.", Keywords: []string{"родился"}},
			},
		},
	}
	writer := &fakeWriter{reply: "Ответ музы."}
	publisher := &fakePublisher{}

	machine := state.NewMachine(pick.NewPicker(rand.New(rand.NewSource(1))))
	svc := NewDialogService(provider, memory.NewSessionRepository(), machine, writer, publisher, nil, nil)

	return &dialogFixture{
		service:   svc,
		provider:  provider,
		writer:    writer,
		publisher: publisher,
		authorId:  authorId,
		userId:    uuid.New(),
	}
}

func (fx *dialogFixture) send(t *testing.T, message string) *dto.SendMessageResponse {
	t.Helper()
	resp, err := fx.service.SendMessage(context.Background(), fx.userId, &dto.SendMessageRequest{Message: message})
	if err != nil {
		t.Fatalf("SendMessage(%q) error: %v", message, err)
	}
	return resp
}

func TestStartDialog(t *testing.T) {
	fx := newDialogFixture()

	resp, err := fx.service.Start(context.Background(), fx.userId, &dto.StartDialogRequest{AuthorId: fx.authorId})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if resp.Stage != string(store.StageAwaitingName) {
		t.Errorf("Stage = %s, want AWAITING_NAME", resp.Stage)
	}
	if !strings.Contains(resp.Greeting, "Александр Сергеевич Пушкин") {
		t.Errorf("greeting %q does not introduce the author", resp.Greeting)
	}
}

func TestStartDialogUnknownAuthor(t *testing.T) {
	fx := newDialogFixture()

	_, err := fx.service.Start(context.Background(), fx.userId, &dto.StartDialogRequest{AuthorId: uuid.New()})
	var appErr *serverutils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error = %v, want *serverutils.AppError", err)
	}
	if appErr.Code != 404 {
		t.Errorf("Code = %d, want 404", appErr.Code)
	}
}

func TestSendMessageWithoutSession(t *testing.T) {
	fx := newDialogFixture()

	_, err := fx.service.SendMessage(context.Background(), fx.userId, &dto.SendMessageRequest{Message: "привет"})
	if err == nil || !strings.Contains(err.Error(), "No active dialog") {
		t.Fatalf("error = %v, want no-active-dialog", err)
	}
}

func TestTurnPipelinePrecedence(t *testing.T) {
	fx := newDialogFixture()
	if _, err := fx.service.Start(context.Background(), fx.userId, &dto.StartDialogRequest{AuthorId: fx.authorId}); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	// Scripted onboarding runs on the state machine.
	resp := fx.send(t, "меня зовут Пётр")
	if resp.Source != entity.TurnSourceStateMachine {
		t.Errorf("name turn Source = %q, want state machine", resp.Source)
	}
	if resp.Stage != string(store.StageOfferingPoem) {
		t.Errorf("Stage = %s, want OFFERING_POEM", resp.Stage)
	}

	// Unrecognized offer input falls through to the resolution chain.
	resp = fx.send(t, "а где ты родился?")
	if resp.Source != entity.TurnSourceFaq {
		t.Errorf("faq turn Source = %q, want faq", resp.Source)
	}
	if resp.Reply != "Я родился в Москве 6 июня 1799 года." {
		t.Errorf("faq reply = %q", resp.Reply)
	}
	if fx.writer.calls != 0 {
		t.Errorf("fallback ran %d times on a scripted turn, want 0", fx.writer.calls)
	}

	// A full miss reaches the generative fallback exactly once.
	resp = fx.send(t, "что ты думаешь о будущем?")
	if resp.Source != entity.TurnSourceFallback {
		t.Errorf("miss turn Source = %q, want fallback", resp.Source)
	}
	if resp.Reply != "Ответ музы." {
		t.Errorf("fallback reply = %q", resp.Reply)
	}
	if fx.writer.calls != 1 {
		t.Errorf("fallback ran %d times, want exactly 1", fx.writer.calls)
	}
}

func TestFallbackLeavesStageUnchanged(t *testing.T) {
	fx := newDialogFixture()
	if _, err := fx.service.Start(context.Background(), fx.userId, &dto.StartDialogRequest{AuthorId: fx.authorId}); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	fx.send(t, "меня зовут Анна")

	// The writer degrades to apology text internally; the turn still
	// completes and the stage must not move.
	fx.writer.reply = "Не удалось связаться с литературной музой."
	resp := fx.send(t, "расскажи о квантовой физике")
	if resp.Source != entity.TurnSourceFallback {
		t.Errorf("Source = %q, want fallback", resp.Source)
	}
	if resp.Stage != string(store.StageOfferingPoem) {
		t.Errorf("Stage = %s, fallback must not transition", resp.Stage)
	}
}

func TestTurnEventPublished(t *testing.T) {
	fx := newDialogFixture()
	if _, err := fx.service.Start(context.Background(), fx.userId, &dto.StartDialogRequest{AuthorId: fx.authorId}); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	fx.send(t, "меня зовут Игорь")
	if len(fx.publisher.published) != 1 {
		t.Fatalf("published %d turn events, want 1", len(fx.publisher.published))
	}
	payload := string(fx.publisher.published[0])
	if !strings.Contains(payload, fx.userId.String()) {
		t.Error("turn event payload does not carry the user id")
	}
}

func TestStopDialog(t *testing.T) {
	fx := newDialogFixture()
	if _, err := fx.service.Start(context.Background(), fx.userId, &dto.StartDialogRequest{AuthorId: fx.authorId}); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	resp, err := fx.service.Stop(context.Background(), fx.userId)
	if err != nil {
		t.Fatalf("Stop error: %v", err)
	}
	if !strings.Contains(resp.Message, "Диалог завершён") {
		t.Errorf("stop message = %q", resp.Message)
	}

	if _, err := fx.service.SendMessage(context.Background(), fx.userId, &dto.SendMessageRequest{Message: "привет"}); err == nil {
		t.Error("expected an error after the session was stopped")
	}

	// Stopping again is a no-op, not an error.
	if _, err := fx.service.Stop(context.Background(), fx.userId); err != nil {
		t.Fatalf("second Stop error: %v", err)
	}
}
