package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventroster/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns an EventLookup backed by the events table.
func NewEventRepository(db *sql.DB) domain.EventLookup {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, name, start_date, end_date, place, description, image_url
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var startNull, endNull sql.NullTime
	var placeNull, descNull, imageNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Name, &startNull, &endNull, &placeNull, &descNull, &imageNull,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: get event: %w", domain.ErrTransport, err)
	}
	e.StartDate = formatDate(startNull)
	e.EndDate = formatDate(endNull)
	e.Place = placeNull.String
	e.Description = descNull.String
	e.ImageURL = imageNull.String
	return e, nil
}

func formatDate(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(time.DateOnly)
}
