package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"eventroster/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "name", "start_date", "end_date", "place", "description", "image_url"}

	tests := []struct {
		name         string
		id           string
		mock         func(mock sqlmock.Sqlmock)
		want         *domain.Event
		wantErr      bool
		wantNotFound bool
	}{
		{
			name: "found",
			id:   "e1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, start_date, end_date, place, description, image_url\s+FROM events\s+WHERE id = \$1`).
					WithArgs("e1").
					WillReturnRows(sqlmock.NewRows(columns).AddRow(
						"e1", "Conf",
						time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
						"Madrid", "Yearly conference", "https://img.example.com/conf.png",
					))
			},
			want: &domain.Event{
				ID:          "e1",
				Name:        "Conf",
				StartDate:   "2024-06-01",
				EndDate:     "2024-06-02",
				Place:       "Madrid",
				Description: "Yearly conference",
				ImageURL:    "https://img.example.com/conf.png",
			},
		},
		{
			name: "nullable columns",
			id:   "e2",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM events`).
					WithArgs("e2").
					WillReturnRows(sqlmock.NewRows(columns).AddRow("e2", "Meetup", nil, nil, nil, nil, nil))
			},
			want: &domain.Event{ID: "e2", Name: "Meetup"},
		},
		{
			name: "not found",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM events`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name: "db error",
			id:   "e1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM events`).
					WithArgs("e1").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				require.Equal(t, tt.wantNotFound, errors.Is(err, domain.ErrNotFound))
				require.Equal(t, !tt.wantNotFound, errors.Is(err, domain.ErrTransport))
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
