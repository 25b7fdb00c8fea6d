package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartDialogRequest struct {
	AuthorId uuid.UUID `json:"author_id" validate:"required"`
}

type StartDialogResponse struct {
	AuthorId uuid.UUID `json:"author_id"`
	Greeting string    `json:"greeting"`
	Stage    string    `json:"stage"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type SendMessageResponse struct {
	Reply  string `json:"reply"`
	Stage  string `json:"stage"`
	Source string `json:"source"`
}

type StopDialogResponse struct {
	Message string `json:"message"`
}

// PublishTurnProcessedMessage is the payload published to the internal event
// bus after every completed turn, consumed asynchronously into turn_logs.
type PublishTurnProcessedMessage struct {
	UserId      uuid.UUID `json:"user_id"`
	AuthorId    uuid.UUID `json:"author_id"`
	Source      string    `json:"source"`
	Stage       string    `json:"stage"`
	ProcessedAt time.Time `json:"processed_at"`
}
