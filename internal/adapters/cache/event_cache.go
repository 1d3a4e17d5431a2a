// Package cache provides a Redis read-through cache in front of the event lookup service.
// When Redis is unavailable the cache steps aside and every call reaches the upstream lookup.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"eventroster/internal/domain"
)

const (
	DefaultTTL    = 30 * time.Second
	DefaultPrefix = "eventroster:event"
)

type cachedEventLookup struct {
	next   domain.EventLookup
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// NewCachedEventLookup wraps next with a Redis cache. A nil client returns next unchanged.
// Only successful lookups are cached; not-found and transport failures always go upstream.
func NewCachedEventLookup(next domain.EventLookup, client *redis.Client, ttl time.Duration, logger *slog.Logger) domain.EventLookup {
	if client == nil {
		return next
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &cachedEventLookup{next: next, client: client, ttl: ttl, prefix: DefaultPrefix, logger: logger}
}

func (c *cachedEventLookup) key(id string) string {
	return c.prefix + ":" + id
}

func (c *cachedEventLookup) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	key := c.key(id)
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var event domain.Event
		if jerr := json.Unmarshal(raw, &event); jerr == nil {
			return &event, nil
		}
		c.logger.WarnContext(ctx, "discarding undecodable cached event", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.WarnContext(ctx, "event cache read failed", "key", key, "err", err)
	}

	event, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload, jerr := json.Marshal(event); jerr == nil {
		if serr := c.client.Set(ctx, key, payload, c.ttl).Err(); serr != nil {
			c.logger.WarnContext(ctx, "event cache write failed", "key", key, "err", serr)
		}
	}
	return event, nil
}
