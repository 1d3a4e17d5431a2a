package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"eventroster/internal/domain"
	"eventroster/internal/telemetry"
)

// User-facing failure messages.
const (
	msgEventNotFound     = "Event not found."
	msgEventLoadFailed   = "Failed to load event details."
	msgRosterUnavailable = "Participants could not be loaded. The list below may be incomplete."
	msgCancelFailed      = "The registration could not be cancelled. Please try again."
)

// DetailViewDeps groups the collaborators of a detail view.
type DetailViewDeps struct {
	Events       domain.EventLookup
	Inscriptions domain.InscriptionService
	Navigator    domain.Navigator
	// Notifier is optional.
	Notifier domain.CancellationNotifier
	Viewer   domain.Viewer
	// JoinRule defaults to domain.JoinByEventIDOrName.
	JoinRule domain.JoinRule
	// CancelPolicy defaults to domain.AllowOwnInscription.
	CancelPolicy domain.CancelPolicy
	Logger       *slog.Logger
	Tracer       trace.Tracer
	// RequestTimeout bounds each remote call; zero means no extra bound.
	RequestTimeout time.Duration
}

type detailView struct {
	events       domain.EventLookup
	inscriptions domain.InscriptionService
	nav          domain.Navigator
	notifier     domain.CancellationNotifier
	viewer       domain.Viewer
	join         domain.JoinRule
	canCancel    domain.CancelPolicy
	logger       *slog.Logger
	tracer       trace.Tracer
	timeout      time.Duration

	mu              sync.Mutex
	generation      uint64
	cancelLoad      context.CancelFunc
	status          domain.ViewStatus
	eventID         string
	event           *domain.Event
	roster          []domain.Inscription
	rosterAvailable bool
	viewerIns       *domain.Inscription
	searchTerm      string
	failure         *domain.ViewFailure
	banner          *domain.ViewFailure
	pending         map[domain.InscriptionID]struct{}
}

// NewDetailView creates a DetailView in the idle state.
func NewDetailView(deps DetailViewDeps) domain.DetailView {
	v := &detailView{
		events:       deps.Events,
		inscriptions: deps.Inscriptions,
		nav:          deps.Navigator,
		notifier:     deps.Notifier,
		viewer:       deps.Viewer,
		join:         deps.JoinRule,
		canCancel:    deps.CancelPolicy,
		logger:       deps.Logger,
		tracer:       deps.Tracer,
		timeout:      deps.RequestTimeout,
		status:       domain.StatusIdle,
		roster:       []domain.Inscription{},
		pending:      make(map[domain.InscriptionID]struct{}),
	}
	if v.join == nil {
		v.join = domain.JoinByEventIDOrName
	}
	if v.canCancel == nil {
		v.canCancel = domain.AllowOwnInscription
	}
	if v.logger == nil {
		v.logger = slog.New(slog.DiscardHandler)
	}
	if v.tracer == nil {
		v.tracer = telemetry.NoopTracer()
	}
	return v
}

// Load fetches the event and then its roster. A lookup failure ends in StatusError without
// fetching inscriptions. A roster failure still ends in StatusLoaded with an empty, unavailable
// roster and a banner. Responses of a load superseded by a newer one are dropped with ErrStaleLoad.
func (v *detailView) Load(ctx context.Context, eventID string) (domain.ViewState, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return v.State(), fmt.Errorf("%w: event id is required", domain.ErrInvalidInput)
	}

	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	v.mu.Lock()
	if v.cancelLoad != nil {
		v.cancelLoad()
	}
	v.generation++
	gen := v.generation
	v.cancelLoad = cancel
	v.resetLocked(eventID)
	v.status = domain.StatusLoadingEvent
	v.mu.Unlock()

	loadCtx, span := v.tracer.Start(loadCtx, telemetry.SpanLoad, trace.WithAttributes(
		attribute.String(telemetry.AttrEventID, eventID),
		attribute.String(telemetry.AttrViewer, v.viewer.Username),
		attribute.Int64(telemetry.AttrGeneration, int64(gen)),
	))
	defer span.End()

	event, err := v.fetchEvent(loadCtx, eventID)

	v.mu.Lock()
	if gen != v.generation {
		state := v.snapshotLocked()
		v.mu.Unlock()
		span.SetAttributes(attribute.String(telemetry.AttrOutcome, "stale"))
		return state, domain.ErrStaleLoad
	}
	if err != nil {
		v.status = domain.StatusError
		v.failure = &domain.ViewFailure{Kind: domain.FailureLookup, Message: lookupMessage(err)}
		state := v.snapshotLocked()
		v.mu.Unlock()

		span.RecordError(err)
		span.SetStatus(codes.Error, "event lookup failed")
		v.logger.WarnContext(ctx, "event lookup failed", "event_id", eventID, "err", err)
		return state, fmt.Errorf("get event: %w", err)
	}
	v.event = event
	v.status = domain.StatusLoadingRoster
	v.mu.Unlock()

	all, err := v.fetchInscriptions(loadCtx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		span.SetAttributes(attribute.String(telemetry.AttrOutcome, "stale"))
		return v.snapshotLocked(), domain.ErrStaleLoad
	}
	v.status = domain.StatusLoaded
	if err != nil {
		v.roster = []domain.Inscription{}
		v.rosterAvailable = false
		v.viewerIns = nil
		v.banner = &domain.ViewFailure{Kind: domain.FailureRosterFetch, Message: msgRosterUnavailable, Retryable: true}

		span.RecordError(err)
		v.logger.WarnContext(ctx, "inscription fetch failed", "event_id", eventID, "err", err)
		return v.snapshotLocked(), nil
	}

	v.roster = domain.BuildRoster(*event, all, v.join)
	v.rosterAvailable = true
	v.deriveViewerLocked()
	span.SetAttributes(attribute.Int(telemetry.AttrRosterSize, len(v.roster)))
	if v.viewerIns == nil {
		v.logger.DebugContext(ctx, "no inscription for viewer", "event_id", eventID, "viewer", v.viewer.Username)
	}
	return v.snapshotLocked(), nil
}

// SetSearchTerm re-filters the held roster without any remote call.
func (v *detailView) SetSearchTerm(term string) domain.ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.searchTerm = term
	return v.snapshotLocked()
}

// ClearSearchTerm is SetSearchTerm("").
func (v *detailView) ClearSearchTerm() domain.ViewState {
	return v.SetSearchTerm("")
}

// Cancel deletes one roster inscription remotely, prunes it locally and navigates to the event
// list. An inscription already gone remotely counts as cancelled. On any other failure the roster
// is left as it was and a retryable banner is set.
func (v *detailView) Cancel(ctx context.Context, id domain.InscriptionID) (domain.ViewState, error) {
	v.mu.Lock()
	if v.status != domain.StatusLoaded {
		state := v.snapshotLocked()
		v.mu.Unlock()
		return state, fmt.Errorf("%w: view is not loaded", domain.ErrInvalidInput)
	}
	idx := -1
	for i := range v.roster {
		if v.roster[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		state := v.snapshotLocked()
		v.mu.Unlock()
		return state, domain.ErrNotInRoster
	}
	ins := v.roster[idx]
	if !v.canCancel(v.viewer, ins) {
		state := v.snapshotLocked()
		v.mu.Unlock()
		return state, domain.ErrForbidden
	}
	if _, busy := v.pending[id]; busy {
		state := v.snapshotLocked()
		v.mu.Unlock()
		return state, fmt.Errorf("%w: cancellation already in progress", domain.ErrInvalidInput)
	}
	v.pending[id] = struct{}{}
	gen := v.generation
	event := *v.event
	v.mu.Unlock()

	ctx, span := v.tracer.Start(ctx, telemetry.SpanCancel, trace.WithAttributes(
		attribute.String(telemetry.AttrEventID, event.ID),
		attribute.String(telemetry.AttrInscriptionID, id.String()),
		attribute.String(telemetry.AttrViewer, v.viewer.Username),
	))
	defer span.End()

	err := v.deleteInscription(ctx, id)

	v.mu.Lock()
	delete(v.pending, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		if gen == v.generation {
			v.banner = &domain.ViewFailure{Kind: domain.FailureCancel, Message: msgCancelFailed, Retryable: true}
		}
		state := v.snapshotLocked()
		v.mu.Unlock()

		span.RecordError(err)
		span.SetStatus(codes.Error, "delete inscription failed")
		v.logger.ErrorContext(ctx, "cancel inscription failed", "inscription_id", id, "event_id", event.ID, "err", err)
		return state, fmt.Errorf("delete inscription: %w", err)
	}
	if gen == v.generation {
		v.roster, _ = domain.RemoveInscription(v.roster, id)
		v.deriveViewerLocked()
		if v.banner != nil && v.banner.Kind == domain.FailureCancel {
			v.banner = nil
		}
	}
	state := v.snapshotLocked()
	v.mu.Unlock()

	if err != nil {
		v.logger.InfoContext(ctx, "inscription already removed upstream", "inscription_id", id, "event_id", event.ID)
	} else {
		v.logger.InfoContext(ctx, "inscription cancelled", "inscription_id", id, "event_id", event.ID, "viewer", v.viewer.Username)
	}

	v.notifyCancelled(ctx, event, ins)
	if v.nav != nil {
		v.nav.ToEventList(ctx)
	}
	return state, nil
}

// State returns the current render-ready snapshot.
func (v *detailView) State() domain.ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// Close cancels any in-flight load; its responses are then discarded.
func (v *detailView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancelLoad != nil {
		v.cancelLoad()
		v.cancelLoad = nil
	}
	v.generation++
}

func (v *detailView) resetLocked(eventID string) {
	v.status = domain.StatusIdle
	v.eventID = eventID
	v.event = nil
	v.roster = []domain.Inscription{}
	v.rosterAvailable = false
	v.viewerIns = nil
	v.failure = nil
	v.banner = nil
}

// deriveViewerLocked recomputes the viewer's own inscription from the roster so it can never
// point outside it.
func (v *detailView) deriveViewerLocked() {
	if ins, ok := domain.FindViewerInscription(v.roster, v.viewer); ok {
		v.viewerIns = &ins
		return
	}
	v.viewerIns = nil
}

func (v *detailView) snapshotLocked() domain.ViewState {
	filtered := domain.FilterRoster(v.roster, v.searchTerm)
	rows := make([]domain.RosterRow, 0, len(filtered))
	for _, ins := range filtered {
		rows = append(rows, domain.RosterRow{
			Inscription: ins,
			CanCancel:   v.canCancel(v.viewer, ins),
			IsViewer:    v.viewerIns != nil && v.viewerIns.ID == ins.ID,
		})
	}

	state := domain.ViewState{
		Status:           v.status,
		EventID:          v.eventID,
		SearchTerm:       v.searchTerm,
		Rows:             rows,
		ParticipantCount: len(rows),
		RosterSize:       len(v.roster),
		RosterAvailable:  v.rosterAvailable,
		BackLink:         domain.EventListPath,
	}
	if v.event != nil {
		ev := *v.event
		state.Event = &ev
		state.EventImage = ev.DisplayImage()
	}
	if v.viewerIns != nil {
		state.ViewerInscriptionID = v.viewerIns.ID
		state.HasViewerInscription = true
	}
	if v.failure != nil {
		f := *v.failure
		state.Error = &f
	}
	if v.banner != nil {
		b := *v.banner
		state.Banner = &b
	}
	return state
}

func (v *detailView) fetchEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, span := v.tracer.Start(ctx, telemetry.SpanFetchEvent)
	defer span.End()
	ctx, cancel := v.withTimeout(ctx)
	defer cancel()

	event, err := v.events.GetByID(ctx, eventID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (v *detailView) fetchInscriptions(ctx context.Context) ([]domain.Inscription, error) {
	ctx, span := v.tracer.Start(ctx, telemetry.SpanFetchRoster)
	defer span.End()
	ctx, cancel := v.withTimeout(ctx)
	defer cancel()

	all, err := v.inscriptions.ListAll(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list inscriptions: %w", err)
	}
	return all, nil
}

func (v *detailView) deleteInscription(ctx context.Context, id domain.InscriptionID) error {
	ctx, cancel := v.withTimeout(ctx)
	defer cancel()
	return v.inscriptions.Delete(ctx, id)
}

func (v *detailView) notifyCancelled(ctx context.Context, event domain.Event, ins domain.Inscription) {
	if v.notifier == nil {
		return
	}
	ctx, span := v.tracer.Start(ctx, telemetry.SpanNotifyCancel)
	defer span.End()

	notice := domain.CancellationNotice{
		InscriptionID: ins.ID,
		EventID:       event.ID,
		EventName:     event.Name,
		Username:      ins.Username,
		CancelledBy:   v.viewer.Username,
		CancelledAt:   time.Now().UTC(),
	}
	if ins.Username == v.viewer.Username {
		notice.Email = v.viewer.Email
	}
	if err := v.notifier.NotifyCancelled(ctx, notice); err != nil {
		span.RecordError(err)
		v.logger.WarnContext(ctx, "cancellation notice failed", "inscription_id", ins.ID, "err", err)
	}
}

func (v *detailView) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if v.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, v.timeout)
}

func lookupMessage(err error) string {
	if errors.Is(err, domain.ErrNotFound) {
		return msgEventNotFound
	}
	return msgEventLoadFailed
}
