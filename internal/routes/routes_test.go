package routes

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/giannis84/subway-favorites/internal/auth"
	"github.com/giannis84/subway-favorites/internal/config"
	"github.com/giannis84/subway-favorites/internal/database"
	"github.com/giannis84/subway-favorites/internal/handlers"
	"github.com/giannis84/subway-favorites/internal/logging"
	"github.com/giannis84/subway-favorites/internal/mock"
	"github.com/giannis84/subway-favorites/internal/models"
	"github.com/giannis84/subway-favorites/internal/subway"
)

var testAuth = auth.Config{AllowUnsignedTokens: true}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testToken(sub string) string {
	claims := jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	s, _ := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	return s
}

func sampleRepository() *database.MockRepository {
	return database.NewMockRepository(
		[]models.Station{{ID: 1, Name: "Gyodae"}, {ID: 2, Name: "Gangnam"}, {ID: 3, Name: "Yangjae"}, {ID: 5, Name: "Sinseol-dong"}, {ID: 6, Name: "Yongdu"}},
		[]models.Section{
			{LineID: 1, UpStationID: 1, DownStationID: 2, Distance: 10},
			{LineID: 2, UpStationID: 2, DownStationID: 3, Distance: 10},
			{LineID: 4, UpStationID: 5, DownStationID: 6, Distance: 4},
		},
	)
}

func newRouter(favorites *handlers.Favorites, rateCfg config.RateLimitConfig) *chi.Mux {
	router := chi.NewRouter()
	router.Use(logging.RequestLogger(testLogger()))
	router.Group(RegisterFavoritesRoutes(favorites, testAuth, rateCfg))
	return router
}

func setupTestHandler(t *testing.T) *chi.Mux {
	t.Helper()
	repo := sampleRepository()
	return newRouter(handlers.NewFavorites(repo, subway.NewPathFinder(repo)), config.RateLimitConfig{})
}

func doRequest(router http.Handler, method, path, memberID, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if memberID != "" {
		req.Header.Set("Authorization", "Bearer "+testToken(memberID))
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Error
}

func TestFavoritesRoutes_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No expectations: any store or path call fails the test.
	favorites := handlers.NewFavorites(mock.NewMockFavoritesRepository(ctrl), mock.NewMockPathFinder(ctrl))
	router := newRouter(favorites, config.RateLimitConfig{})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		header string
	}{
		{name: "create without credential", method: http.MethodPost, path: "/favorites", body: `{"source":"1","target":"2"}`},
		{name: "list without credential", method: http.MethodGet, path: "/favorites"},
		{name: "delete without credential", method: http.MethodDelete, path: "/favorites/1"},
		{name: "create with garbage token", method: http.MethodPost, path: "/favorites", body: `{}`, header: "Bearer nope"},
		{name: "list with wrong scheme", method: http.MethodGet, path: "/favorites", header: "Basic abc"},
		{name: "create with wrong content type", method: http.MethodPost, path: "/favorites", body: `x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.NotEmpty(t, decodeError(t, rr))
		})
	}
}

func TestFavoritesRoutes_CreateFavorite(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantError string
	}{
		{name: "string ids", body: `{"source":"1","target":"2"}`, wantCode: http.StatusCreated},
		{name: "numeric ids", body: `{"source":1,"target":3}`, wantCode: http.StatusCreated},
		{name: "same station", body: `{"source":"1","target":"1"}`, wantCode: http.StatusBadRequest, wantError: "must differ"},
		{name: "missing target", body: `{"source":"1"}`, wantCode: http.StatusBadRequest, wantError: "target is required"},
		{name: "not connected", body: `{"source":1,"target":5}`, wantCode: http.StatusBadRequest},
		{name: "unknown station", body: `{"source":1,"target":42}`, wantCode: http.StatusBadRequest},
		{name: "non numeric id", body: `{"source":"one","target":"2"}`, wantCode: http.StatusBadRequest, wantError: "Invalid request body"},
		{name: "malformed json", body: `{"source":`, wantCode: http.StatusBadRequest, wantError: "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestHandler(t)
			rr := doRequest(router, http.MethodPost, "/favorites", "7", tt.body)

			require.Equal(t, tt.wantCode, rr.Code, "body: %s", rr.Body.String())
			if tt.wantCode != http.StatusCreated {
				assert.Contains(t, decodeError(t, rr), tt.wantError)
				return
			}

			var resp CreateFavoriteResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, int64(1), resp.ID)
			assert.Equal(t, "/favorites/1", rr.Header().Get("Location"))
		})
	}
}

func TestFavoritesRoutes_ListFavorites(t *testing.T) {
	router := setupTestHandler(t)

	rr := doRequest(router, http.MethodGet, "/favorites", "7", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	require.Equal(t, http.StatusCreated, doRequest(router, http.MethodPost, "/favorites", "7", `{"source":"1","target":"2"}`).Code)
	require.Equal(t, http.StatusCreated, doRequest(router, http.MethodPost, "/favorites", "8", `{"source":"2","target":"3"}`).Code)

	rr = doRequest(router, http.MethodGet, "/favorites", "7", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var list []models.Favorite
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "7", list[0].MemberID)
	assert.Equal(t, models.Station{ID: 1, Name: "Gyodae"}, list[0].Source)
	assert.Equal(t, models.Station{ID: 2, Name: "Gangnam"}, list[0].Target)
}

func TestFavoritesRoutes_DeleteFavorite(t *testing.T) {
	router := setupTestHandler(t)
	require.Equal(t, http.StatusCreated, doRequest(router, http.MethodPost, "/favorites", "7", `{"source":"1","target":"2"}`).Code)

	tests := []struct {
		name     string
		memberID string
		path     string
		wantCode int
	}{
		{name: "other member", memberID: "8", path: "/favorites/1", wantCode: http.StatusBadRequest},
		{name: "owner", memberID: "7", path: "/favorites/1", wantCode: http.StatusNoContent},
		{name: "already deleted", memberID: "7", path: "/favorites/1", wantCode: http.StatusBadRequest},
		{name: "id zero", memberID: "7", path: "/favorites/0", wantCode: http.StatusBadRequest},
		{name: "non numeric id", memberID: "7", path: "/favorites/abc", wantCode: http.StatusBadRequest},
	}

	// Cases run in order; each depends on the previous state.
	for _, tt := range tests {
		rr := doRequest(router, http.MethodDelete, tt.path, tt.memberID, "")
		assert.Equal(t, tt.wantCode, rr.Code, "%s: body %s", tt.name, rr.Body.String())
		if tt.wantCode == http.StatusNoContent {
			assert.Zero(t, rr.Body.Len(), tt.name)
		}
	}
}

func TestFavoritesRoutes_StoreFailureIs500(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := database.NewSQLRepository(db, database.DriverPostgres)
	router := newRouter(handlers.NewFavorites(repo, subway.NewPathFinder(repo)), config.RateLimitConfig{})

	sqlMock.ExpectQuery("SELECT .+ FROM favorites f").
		WithArgs("7").
		WillReturnError(errors.New("connection reset by peer"))

	rr := doRequest(router, http.MethodGet, "/favorites", "7", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal Server Error", decodeError(t, rr), "store details are not leaked")
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFavoritesRoutes_AcceptHeaderMiddleware(t *testing.T) {
	router := setupTestHandler(t)

	tests := []struct {
		name     string
		accept   string
		wantCode int
	}{
		{name: "missing Accept header", accept: "", wantCode: http.StatusOK},
		{name: "wrong Accept header", accept: "text/html", wantCode: http.StatusNotAcceptable},
		{name: "Accept */*", accept: "*/*", wantCode: http.StatusOK},
		{name: "Accept application/json", accept: "application/json", wantCode: http.StatusOK},
		{name: "Accept with parameters", accept: "application/json; charset=utf-8", wantCode: http.StatusOK},
		{name: "multiple types including json", accept: "text/html, application/json", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
			req.Header.Set("Authorization", "Bearer "+testToken("7"))
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantCode == http.StatusNotAcceptable {
				assert.Equal(t, "Accept header must include application/json", decodeError(t, rr))
			}
		})
	}
}

func TestFavoritesRoutes_ContentTypeMiddleware(t *testing.T) {
	router := setupTestHandler(t)

	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		wantCode    int
	}{
		{name: "POST missing Content-Type", method: http.MethodPost, path: "/favorites", wantCode: http.StatusUnsupportedMediaType},
		{name: "POST wrong Content-Type", method: http.MethodPost, path: "/favorites", contentType: "text/plain", wantCode: http.StatusUnsupportedMediaType},
		{name: "POST json with charset", method: http.MethodPost, path: "/favorites", contentType: "application/json; charset=utf-8", wantCode: http.StatusCreated},
		{name: "GET without Content-Type", method: http.MethodGet, path: "/favorites", wantCode: http.StatusOK},
		{name: "DELETE without Content-Type", method: http.MethodDelete, path: "/favorites/99", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.method == http.MethodPost {
				body = strings.NewReader(`{"source":1,"target":2}`)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			req.Header.Set("Authorization", "Bearer "+testToken("7"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code, "body: %s", rr.Body.String())
			if tt.wantCode == http.StatusUnsupportedMediaType {
				assert.Equal(t, "Content-Type header must be application/json", decodeError(t, rr))
			}
		})
	}
}

func TestFavoritesRoutes_RateLimit(t *testing.T) {
	repo := sampleRepository()
	router := newRouter(handlers.NewFavorites(repo, subway.NewPathFinder(repo)),
		config.RateLimitConfig{Requests: 2, Window: time.Minute})

	for i := range 2 {
		rr := doRequest(router, http.MethodGet, "/favorites", "7", "")
		require.Equal(t, http.StatusOK, rr.Code, "request %d", i+1)
	}
	rr := doRequest(router, http.MethodGet, "/favorites", "7", "")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind handlers.Kind
		want int
	}{
		{handlers.KindMissingField, http.StatusBadRequest},
		{handlers.KindSameSourceAndTarget, http.StatusBadRequest},
		{handlers.KindStationsNotOnAnyPath, http.StatusBadRequest},
		{handlers.KindPathNotConnected, http.StatusBadRequest},
		{handlers.KindNotExistFavorite, http.StatusBadRequest},
		{handlers.KindUnauthenticated, http.StatusUnauthorized},
		{handlers.KindUnknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.kind))
		})
	}
}
