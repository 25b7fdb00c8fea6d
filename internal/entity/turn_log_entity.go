package entity

import (
	"time"

	"github.com/google/uuid"
)

// Turn resolution sources, recorded per processed turn for usage analytics.
const (
	TurnSourceStateMachine = "state_machine"
	TurnSourcePoem         = "poem"
	TurnSourcePoemListing  = "poem_listing"
	TurnSourceCharacter    = "character"
	TurnSourceFaq          = "faq"
	TurnSourceFallback     = "fallback"
)

// TurnLog is one processed dialogue turn, persisted asynchronously by the
// consumer service.
type TurnLog struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	AuthorId  uuid.UUID
	Source    string
	Stage     string
	CreatedAt time.Time
}
