package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventroster/internal/domain"
)

type countingLookup struct {
	event *domain.Event
	err   error
	calls int
}

func (c *countingLookup) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.event, nil
}

func TestNewCachedEventLookup_NilClientIsPassthrough(t *testing.T) {
	inner := &countingLookup{event: &domain.Event{ID: "e1"}}
	lookup := NewCachedEventLookup(inner, nil, time.Minute, nil)
	assert.Same(t, domain.EventLookup(inner), lookup)
}

// unreachableClient points at a port nothing listens on, so every command fails fast.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCachedEventLookup_DegradesWhenRedisIsDown(t *testing.T) {
	inner := &countingLookup{event: &domain.Event{ID: "e1", Name: "Conf"}}
	lookup := NewCachedEventLookup(inner, unreachableClient(t), time.Minute, nil)

	event, err := lookup.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "Conf", event.Name)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedEventLookup_PropagatesUpstreamErrors(t *testing.T) {
	inner := &countingLookup{err: domain.ErrNotFound}
	lookup := NewCachedEventLookup(inner, unreachableClient(t), time.Minute, nil)

	_, err := lookup.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCachedEventLookup_Key(t *testing.T) {
	c := &cachedEventLookup{prefix: DefaultPrefix}
	assert.Equal(t, "eventroster:event:e1", c.key("e1"))
}
