package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Inscription is a registration of a username to an event.
// EventID is empty for legacy records that only reference the event by name.
// swagger:model Inscription
type Inscription struct {
	ID           InscriptionID `json:"id"`
	EventID      string        `json:"eventId,omitempty"`
	EventName    string        `json:"eventName"`
	Username     string        `json:"username"`
	RegisteredAt string        `json:"fecha_Inscripcion"`
}

// InscriptionID identifies an inscription. Upstream services emit either numbers or strings.
type InscriptionID string

// UnmarshalJSON accepts both JSON strings and JSON numbers.
func (id *InscriptionID) UnmarshalJSON(b []byte) error {
	s, err := decodeFlexibleID(b)
	if err != nil {
		return fmt.Errorf("inscription id: %w", err)
	}
	*id = InscriptionID(s)
	return nil
}

// decodeFlexibleID decodes a JSON string, number or null into its string form.
func decodeFlexibleID(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// String returns the identifier as a string.
func (id InscriptionID) String() string { return string(id) }

// InscriptionIDFromInt is a convenience for numeric upstream identifiers.
func InscriptionIDFromInt(n int64) InscriptionID {
	return InscriptionID(strconv.FormatInt(n, 10))
}

// InscriptionService is the remote store of inscriptions across all events.
type InscriptionService interface {
	// ListAll returns every inscription, unfiltered and unpaginated, in store order.
	ListAll(ctx context.Context) ([]Inscription, error)
	// Delete removes one inscription. Returns ErrNotFound when it no longer exists.
	Delete(ctx context.Context, id InscriptionID) error
}
