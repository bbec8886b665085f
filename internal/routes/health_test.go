package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthRoutes(t *testing.T) {
	tests := []struct {
		name     string
		ping     pingFunc
		path     string
		wantCode int
		wantBody string
	}{
		{name: "live ignores the database", ping: func(context.Context) error { return errors.New("down") }, path: "/health/live", wantCode: http.StatusOK, wantBody: "OK"},
		{name: "ready with database up", ping: func(context.Context) error { return nil }, path: "/health/ready", wantCode: http.StatusOK, wantBody: "Ready"},
		{name: "ready with database down", ping: func(context.Context) error { return errors.New("down") }, path: "/health/ready", wantCode: http.StatusServiceUnavailable, wantBody: "database not ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := chi.NewRouter()
			router.Group(RegisterHealthRoutes(tt.ping))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestHealthRoutes_SQLPing(t *testing.T) {
	db, sqlMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	router := chi.NewRouter()
	router.Group(RegisterHealthRoutes(db))

	sqlMock.ExpectPing()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	sqlMock.ExpectPing().WillReturnError(errors.New("connection refused"))
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
