package inscriptionapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventroster/internal/domain"
)

func TestHTTPService_ListAll(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    []domain.Inscription
		wantErr error
	}{
		{
			name:   "success keeps upstream order",
			status: http.StatusOK,
			body:   `[{"id":2,"eventName":"Conf","username":"bob","fecha_Inscripcion":"2024-05-02"},{"id":1,"eventName":"Conf","username":"alice","fecha_Inscripcion":"2024-05-01"}]`,
			want: []domain.Inscription{
				{ID: "2", EventName: "Conf", Username: "bob", RegisteredAt: "2024-05-02"},
				{ID: "1", EventName: "Conf", Username: "alice", RegisteredAt: "2024-05-01"},
			},
		},
		{name: "null body is empty", status: http.StatusOK, body: `null`, want: []domain.Inscription{}},
		{name: "server error", status: http.StatusInternalServerError, wantErr: domain.ErrTransport},
		{name: "bad body", status: http.StatusOK, body: `[{`, wantErr: domain.ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/inscriptions", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := NewHTTPService(srv.Client(), srv.URL).ListAll(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "not found", status: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "server error", status: http.StatusServiceUnavailable, wantErr: domain.ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/inscriptions/42", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := NewHTTPService(srv.Client(), srv.URL).Delete(context.Background(), "42")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
