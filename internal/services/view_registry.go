package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"eventroster/internal/domain"
)

const (
	// DefaultViewTTL is how long an untouched view session is kept.
	DefaultViewTTL         = 15 * time.Minute
	defaultCleanupInterval = 5 * time.Minute
)

// ViewFactory builds a detail view for a viewer, wired to the given navigator.
type ViewFactory func(viewer domain.Viewer, nav domain.Navigator) domain.DetailView

type viewRegistry struct {
	newView ViewFactory
	cache   *gocache.Cache
	logger  *slog.Logger
}

// NewViewRegistry returns a ViewSessionService that keeps sessions in memory and expires them
// after ttl without access. Expired or closed sessions have their in-flight loads cancelled.
func NewViewRegistry(factory ViewFactory, ttl time.Duration, logger *slog.Logger) domain.ViewSessionService {
	if ttl <= 0 {
		ttl = DefaultViewTTL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cleanup := defaultCleanupInterval
	if ttl < cleanup {
		cleanup = ttl
	}
	c := gocache.New(ttl, cleanup)
	c.OnEvicted(func(id string, v any) {
		if s, ok := v.(*domain.ViewSession); ok {
			s.View.Close()
			logger.Debug("view session closed", "view_id", id, "viewer", s.Viewer.Username)
		}
	})
	return &viewRegistry{newView: factory, cache: c, logger: logger}
}

func (r *viewRegistry) Open(ctx context.Context, viewer domain.Viewer, eventID string) (*domain.ViewSession, domain.ViewState, error) {
	if viewer.Username == "" {
		return nil, domain.ViewState{}, fmt.Errorf("%w: viewer is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(eventID) == "" {
		return nil, domain.ViewState{}, fmt.Errorf("%w: event id is required", domain.ErrInvalidInput)
	}

	nav := &RecordingNavigator{}
	session := &domain.ViewSession{
		ID:             uuid.NewString(),
		Viewer:         viewer,
		View:           r.newView(viewer, nav),
		TakeNavigation: nav.Take,
	}
	r.cache.Set(session.ID, session, gocache.DefaultExpiration)
	r.logger.DebugContext(ctx, "view session opened", "view_id", session.ID, "viewer", viewer.Username, "event_id", eventID)

	state, err := session.View.Load(ctx, eventID)
	return session, state, err
}

func (r *viewRegistry) Get(viewer domain.Viewer, viewID string) (*domain.ViewSession, error) {
	v, ok := r.cache.Get(viewID)
	if !ok {
		return nil, domain.ErrViewNotFound
	}
	session, ok := v.(*domain.ViewSession)
	if !ok || session.Viewer.Username != viewer.Username {
		return nil, domain.ErrViewNotFound
	}
	if err := r.touch(viewID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// touch extends a session's lifetime. Replace only succeeds while the entry is still cached, so a
// session closed or expired since it was read is never put back.
func (r *viewRegistry) touch(viewID string, session *domain.ViewSession) error {
	if err := r.cache.Replace(viewID, session, gocache.DefaultExpiration); err != nil {
		return domain.ErrViewNotFound
	}
	return nil
}

func (r *viewRegistry) Close(viewer domain.Viewer, viewID string) error {
	if _, err := r.Get(viewer, viewID); err != nil {
		return err
	}
	r.cache.Delete(viewID)
	return nil
}
