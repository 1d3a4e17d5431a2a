package telemetry

// Span attribute keys.
const (
	AttrEventID       = "event.id"
	AttrInscriptionID = "inscription.id"
	AttrViewID        = "view.id"
	AttrViewer        = "viewer.username"
	AttrGeneration    = "view.generation"
	AttrRosterSize    = "roster.size"
	AttrOutcome       = "outcome"
)

// Span names.
const (
	SpanLoad         = "detail_view.load"
	SpanFetchEvent   = "detail_view.fetch_event"
	SpanFetchRoster  = "detail_view.fetch_roster"
	SpanCancel       = "detail_view.cancel"
	SpanNotifyCancel = "detail_view.notify_cancelled"
)
