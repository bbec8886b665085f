package routes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/giannis84/subway-favorites/internal/handlers"
	"github.com/giannis84/subway-favorites/internal/logging"
)

type LoginRequest struct {
	Code string `json:"code"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// RegisterLoginRoutes mounts POST /login/github, which trades a GitHub
// authorization code for a member access token.
func RegisterLoginRoutes(login *handlers.Login) func(r chi.Router) {
	return func(r chi.Router) {
		r.With(requireJSONContentType).Post("/login/github", loginWithGitHubRoute(login))
	}
}

func loginWithGitHubRoute(login *handlers.Login) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logging.Log(ctx).Layer("routes").Op("loginWithGitHub").Err(err).
				Warn("failed to decode request body")
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, err := login.LoginWithGitHub(ctx, req.Code)
		if err != nil {
			respondWithKindError(w, r, "loginWithGitHub", err)
			return
		}

		logging.Log(ctx).Layer("routes").Op("loginWithGitHub").Int("status_code", http.StatusOK).
			Info("member logged in")
		respondWithJSON(w, http.StatusOK, LoginResponse{AccessToken: token})
	}
}
