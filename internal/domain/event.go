package domain

import (
	"context"
	"encoding/json"
	"fmt"
)

// PlaceholderImage is shown when an event has no image of its own.
const PlaceholderImage = "https://via.placeholder.com/600x400"

// Event is the catalog entry shown by the detail view.
// swagger:model Event
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Place       string `json:"place"`
	Description string `json:"description"`
	ImageURL    string `json:"imgEvent,omitempty"`
}

// DisplayImage returns the event image, or PlaceholderImage when none is set.
func (e Event) DisplayImage() string {
	if e.ImageURL == "" {
		return PlaceholderImage
	}
	return e.ImageURL
}

// UnmarshalJSON accepts a numeric or string event id.
func (e *Event) UnmarshalJSON(b []byte) error {
	type alias Event
	aux := struct {
		ID json.RawMessage `json:"id"`
		*alias
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if len(aux.ID) == 0 {
		e.ID = ""
		return nil
	}
	id, err := decodeFlexibleID(aux.ID)
	if err != nil {
		return fmt.Errorf("event id: %w", err)
	}
	e.ID = id
	return nil
}

// EventLookup fetches a single event by identifier.
// Implementations return ErrNotFound for a missing event and wrap ErrTransport on network failure.
type EventLookup interface {
	GetByID(ctx context.Context, id string) (*Event, error)
}
