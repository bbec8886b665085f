package routes

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/giannis84/subway-favorites/internal/auth"
	"github.com/giannis84/subway-favorites/internal/config"
	"github.com/giannis84/subway-favorites/internal/handlers"
	"github.com/giannis84/subway-favorites/internal/logging"
)

const jsonContentType = "application/json"

// RegisterFavoritesRoutes sets up the favorites API routes.
// HTTP concerns are handled here, while business logic is delegated to the handlers package.
// Every route requires a bearer token; unauthenticated requests are answered
// by the auth middleware and never reach favorites.
func RegisterFavoritesRoutes(favorites *handlers.Favorites, authCfg auth.Config, rateCfg config.RateLimitConfig) func(r chi.Router) {
	return func(r chi.Router) {
		r.Route("/favorites", func(r chi.Router) {
			if rateCfg.Requests > 0 {
				r.Use(httprate.LimitByIP(rateCfg.Requests, rateCfg.Window))
			}
			r.Use(auth.JWTMiddleware(authCfg))
			r.Use(requireJSONAccept)
			r.Use(requireJSONContentType)

			r.Post("/", createFavoriteRoute(favorites))
			r.Get("/", listFavoritesRoute(favorites))
			r.Delete("/{favoriteID}", deleteFavoriteRoute(favorites))
		})
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreateFavoriteResponse struct {
	ID int64 `json:"id"`
}

func createFavoriteRoute(favorites *handlers.Favorites) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		memberID := auth.MemberIDFromContext(ctx)

		var req handlers.FavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logging.Log(ctx).Layer("routes").Op("createFavorite").Member(memberID).Err(err).
				Warn("failed to decode request body")
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		id, err := favorites.CreateFavorite(ctx, memberID, req)
		if err != nil {
			respondWithKindError(w, r, "createFavorite", err)
			return
		}

		logging.Log(ctx).Layer("routes").Op("createFavorite").Member(memberID).Favorite(id).
			Int("status_code", http.StatusCreated).Info("favorite created")
		w.Header().Set("Location", fmt.Sprintf("/favorites/%d", id))
		respondWithJSON(w, http.StatusCreated, CreateFavoriteResponse{ID: id})
	}
}

func listFavoritesRoute(favorites *handlers.Favorites) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		memberID := auth.MemberIDFromContext(ctx)

		list, err := favorites.ListFavorites(ctx, memberID)
		if err != nil {
			respondWithKindError(w, r, "listFavorites", err)
			return
		}

		logging.Log(ctx).Layer("routes").Op("listFavorites").Member(memberID).
			Int("count", len(list)).Int("status_code", http.StatusOK).
			Info("favorites retrieved")
		respondWithJSON(w, http.StatusOK, list)
	}
}

func deleteFavoriteRoute(favorites *handlers.Favorites) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		memberID := auth.MemberIDFromContext(ctx)

		favoriteID, err := strconv.ParseInt(chi.URLParam(r, "favoriteID"), 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "favorite id must be an integer")
			return
		}

		if err := favorites.DeleteFavorite(ctx, memberID, favoriteID); err != nil {
			respondWithKindError(w, r, "deleteFavorite", err)
			return
		}

		logging.Log(ctx).Layer("routes").Op("deleteFavorite").Member(memberID).Favorite(favoriteID).
			Int("status_code", http.StatusNoContent).Info("favorite deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}

// statusFor maps a domain error kind to its HTTP status.
func statusFor(kind handlers.Kind) int {
	switch kind {
	case handlers.KindMissingField,
		handlers.KindSameSourceAndTarget,
		handlers.KindStationsNotOnAnyPath,
		handlers.KindPathNotConnected,
		handlers.KindNotExistFavorite:
		return http.StatusBadRequest
	case handlers.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondWithKindError(w http.ResponseWriter, r *http.Request, op string, err error) {
	ctx := r.Context()
	kind := handlers.KindOf(err)
	status := statusFor(kind)
	log := logging.Log(ctx).Layer("routes").Op(op).Member(auth.MemberIDFromContext(ctx)).
		Str("kind", kind.String()).Int("status_code", status).Err(err)

	if status == http.StatusInternalServerError {
		log.Error("request failed")
		respondWithError(w, status, http.StatusText(status))
		return
	}
	log.Warn("request rejected")
	respondWithError(w, status, err.Error())
}

// requireJSONAccept rejects requests whose Accept header excludes JSON.
// A missing header accepts anything.
func requireJSONAccept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept := r.Header.Get("Accept")
		if accept != "" && !acceptsJSON(accept) {
			respondWithError(w, http.StatusNotAcceptable, "Accept header must include application/json")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func acceptsJSON(accept string) bool {
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case jsonContentType, "application/*", "*/*":
			return true
		}
	}
	return false
}

// requireJSONContentType rejects request bodies that are not JSON.
func requireJSONContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != jsonContentType {
				respondWithError(w, http.StatusUnsupportedMediaType, "Content-Type header must be application/json")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		code = http.StatusInternalServerError
		response = []byte(`{"error":"Internal Server Error"}`)
	}
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}
