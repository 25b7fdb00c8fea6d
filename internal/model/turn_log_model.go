package model

import (
	"time"

	"github.com/google/uuid"
)

// TurnLog records one processed dialogue turn for usage analytics. Written
// asynchronously by the consumer service, never on the request path.
type TurnLog struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Source    string    `gorm:"type:varchar(32);not null;index"`
	Stage     string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (TurnLog) TableName() string {
	return "turn_logs"
}
