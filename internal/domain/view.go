package domain

import "context"

// EventListPath is where the user goes after a cancellation or from an error screen.
const EventListPath = "/events"

// ViewStatus is the load state of a detail view.
type ViewStatus string

const (
	StatusIdle          ViewStatus = "idle"
	StatusLoadingEvent  ViewStatus = "loading_event"
	StatusLoadingRoster ViewStatus = "loading_roster"
	StatusLoaded        ViewStatus = "loaded"
	StatusError         ViewStatus = "error"
)

// RosterRow is one rendered participant line.
// swagger:model RosterRow
type RosterRow struct {
	Inscription Inscription `json:"inscription"`
	CanCancel   bool        `json:"can_cancel"`
	IsViewer    bool        `json:"is_viewer"`
}

// ViewState is a render-ready snapshot of a detail view.
// swagger:model ViewState
type ViewState struct {
	Status     ViewStatus `json:"status"`
	EventID    string     `json:"event_id"`
	Event      *Event     `json:"event,omitempty"`
	EventImage string     `json:"event_image,omitempty"`
	SearchTerm string     `json:"search_term"`

	// Rows is the roster after applying SearchTerm; ParticipantCount counts them.
	Rows             []RosterRow `json:"rows"`
	ParticipantCount int         `json:"participant_count"`
	RosterSize       int         `json:"roster_size"`

	// RosterAvailable is false when the inscription fetch failed, as opposed to an event with
	// no registrations.
	RosterAvailable bool `json:"roster_available"`

	ViewerInscriptionID  InscriptionID `json:"viewer_inscription_id,omitempty"`
	HasViewerInscription bool          `json:"has_viewer_inscription"`

	// Error is set in StatusError and blocks the view. Banner carries non-blocking failures.
	Error    *ViewFailure `json:"error,omitempty"`
	Banner   *ViewFailure `json:"banner,omitempty"`
	BackLink string       `json:"back_link"`
}

// Navigator moves the user between views.
type Navigator interface {
	ToEventList(ctx context.Context)
}

// DetailView drives the event detail page: event lookup, roster join, search and cancellation.
type DetailView interface {
	Load(ctx context.Context, eventID string) (ViewState, error)
	SetSearchTerm(term string) ViewState
	ClearSearchTerm() ViewState
	Cancel(ctx context.Context, id InscriptionID) (ViewState, error)
	State() ViewState
	// Close cancels any in-flight load.
	Close()
}

// ViewSession is a detail view held on behalf of one viewer.
type ViewSession struct {
	ID     string
	Viewer Viewer
	View   DetailView
	// TakeNavigation returns the navigation target requested since the previous call, if any.
	TakeNavigation func() (string, bool)
}

// ViewSessionService opens, finds and closes view sessions. Sessions are private to the viewer
// that opened them; other viewers get ErrViewNotFound.
type ViewSessionService interface {
	Open(ctx context.Context, viewer Viewer, eventID string) (*ViewSession, ViewState, error)
	Get(viewer Viewer, viewID string) (*ViewSession, error)
	Close(viewer Viewer, viewID string) error
}
