package eventapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"eventroster/internal/domain"
)

type eventHTTPLookup struct {
	client  *http.Client
	baseURL string
}

// NewHTTPLookup returns an EventLookup that calls GET {baseURL}/events/{id}.
func NewHTTPLookup(client *http.Client, baseURL string) domain.EventLookup {
	if client == nil {
		client = http.DefaultClient
	}
	return &eventHTTPLookup{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (l *eventHTTPLookup) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	endpoint := fmt.Sprintf("%s/events/%s", l.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch event: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: event api returned status: %d", domain.ErrTransport, resp.StatusCode)
	}

	var event domain.Event
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return nil, fmt.Errorf("%w: failed to decode event response: %w", domain.ErrTransport, err)
	}
	return &event, nil
}
