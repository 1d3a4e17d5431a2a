package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eventroster/internal/domain"
)

type inscriptionRepository struct {
	DB *sql.DB
}

// NewInscriptionRepository returns an InscriptionService backed by the inscriptions table.
func NewInscriptionRepository(db *sql.DB) domain.InscriptionService {
	return &inscriptionRepository{
		DB: db,
	}
}

func (r *inscriptionRepository) ListAll(ctx context.Context) ([]domain.Inscription, error) {
	query := `
		SELECT id, event_id, event_name, username, registered_at
		FROM inscriptions
		ORDER BY registered_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query inscriptions: %w", domain.ErrTransport, err)
	}
	defer rows.Close()

	list := []domain.Inscription{}
	for rows.Next() {
		var ins domain.Inscription
		var id string
		var eventIDNull sql.NullString
		var registeredNull sql.NullTime
		if err := rows.Scan(&id, &eventIDNull, &ins.EventName, &ins.Username, &registeredNull); err != nil {
			return nil, fmt.Errorf("%w: scan inscription: %w", domain.ErrTransport, err)
		}
		ins.ID = domain.InscriptionID(id)
		ins.EventID = eventIDNull.String
		ins.RegisteredAt = formatDate(registeredNull)
		list = append(list, ins)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate inscriptions: %w", domain.ErrTransport, err)
	}
	return list, nil
}

func (r *inscriptionRepository) Delete(ctx context.Context, id domain.InscriptionID) error {
	query := `DELETE FROM inscriptions WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id.String())
	if err != nil {
		return fmt.Errorf("%w: delete inscription: %w", domain.ErrTransport, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %w", domain.ErrTransport, err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
