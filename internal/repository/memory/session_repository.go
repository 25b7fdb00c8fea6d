package memory

import (
	"time"

	"ai-writerbot-be/pkg/store"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps dialogue sessions in process memory, keyed by user
// id. Sessions are ephemeral: an idle conversation expires after an hour and
// nothing survives a restart. The cache's own locking covers concurrent
// lookups from different users; serializing turns of a single user is the
// dialogue service's job.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.UserId.String(), session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(userId uuid.UUID) (*store.Session, bool) {
	if x, found := r.cache.Get(userId.String()); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(userId uuid.UUID) {
	r.cache.Delete(userId.String())
}
