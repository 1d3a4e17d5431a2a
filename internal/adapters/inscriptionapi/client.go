package inscriptionapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"eventroster/internal/domain"
)

type inscriptionHTTPService struct {
	client  *http.Client
	baseURL string
}

// NewHTTPService returns an InscriptionService backed by
// GET {baseURL}/inscriptions and DELETE {baseURL}/inscriptions/{id}.
func NewHTTPService(client *http.Client, baseURL string) domain.InscriptionService {
	if client == nil {
		client = http.DefaultClient
	}
	return &inscriptionHTTPService{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *inscriptionHTTPService) ListAll(ctx context.Context) ([]domain.Inscription, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/inscriptions", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch inscriptions: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: inscription api returned status: %d", domain.ErrTransport, resp.StatusCode)
	}

	var data []domain.Inscription
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode inscriptions response: %w", domain.ErrTransport, err)
	}
	if data == nil {
		data = []domain.Inscription{}
	}
	return data, nil
}

func (s *inscriptionHTTPService) Delete(ctx context.Context, id domain.InscriptionID) error {
	endpoint := fmt.Sprintf("%s/inscriptions/%s", s.baseURL, url.PathEscape(id.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to delete inscription: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: inscription api returned status: %d", domain.ErrTransport, resp.StatusCode)
	}
	return nil
}
