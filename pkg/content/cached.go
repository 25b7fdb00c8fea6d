package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"ai-writerbot-be/internal/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// cachedProvider is a read-through Redis cache in front of another Provider.
// Content is read-mostly and pre-seeded, so snapshots and grouped works are
// cached as JSON with a TTL. Cache failures degrade to the inner provider;
// they never fail a turn.
type cachedProvider struct {
	inner Provider
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedProvider(inner Provider, rdb *redis.Client, ttl time.Duration) Provider {
	return &cachedProvider{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

func snapshotKey(id uuid.UUID) string {
	return fmt.Sprintf("content:snapshot:%s", id)
}

func worksKey(id uuid.UUID) string {
	return fmt.Sprintf("content:works:%s", id)
}

func (c *cachedProvider) Snapshot(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	key := snapshotKey(id)
	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err == nil {
			return &snap, nil
		}
	}

	snap, err := c.inner.Snapshot(ctx, id)
	if err != nil || snap == nil {
		return snap, err
	}

	if data, err := json.Marshal(snap); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("[WARN] Failed to cache content snapshot: %v", err)
		}
	}
	return snap, nil
}

func (c *cachedProvider) GetAuthorWorks(ctx context.Context, id uuid.UUID) ([]WorkGroup, error) {
	key := worksKey(id)
	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var groups []WorkGroup
		if err := json.Unmarshal(data, &groups); err == nil {
			return groups, nil
		}
	}

	groups, err := c.inner.GetAuthorWorks(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(groups); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("[WARN] Failed to cache grouped works: %v", err)
		}
	}
	return groups, nil
}

// Remaining reads pass through; they are either cheap or already served via
// Snapshot on the turn path.

func (c *cachedProvider) GetAuthor(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	return c.inner.GetAuthor(ctx, id)
}

func (c *cachedProvider) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	return c.inner.ListAuthors(ctx)
}

func (c *cachedProvider) ListFaq(ctx context.Context, id uuid.UUID) ([]entity.FaqEntry, error) {
	return c.inner.ListFaq(ctx, id)
}

func (c *cachedProvider) ListPoems(ctx context.Context, id uuid.UUID) ([]entity.PoemEntry, error) {
	return c.inner.ListPoems(ctx, id)
}

func (c *cachedProvider) GetPoemTitles(ctx context.Context, id uuid.UUID) ([]string, error) {
	return c.inner.GetPoemTitles(ctx, id)
}

func (c *cachedProvider) ListCharacters(ctx context.Context, id uuid.UUID) ([]entity.CharacterEntry, error) {
	return c.inner.ListCharacters(ctx, id)
}

func (c *cachedProvider) PickRandomPoem(ctx context.Context, id uuid.UUID, excludeTitles map[string]bool) (*entity.PoemEntry, error) {
	return c.inner.PickRandomPoem(ctx, id, excludeTitles)
}
