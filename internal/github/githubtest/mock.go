// Package githubtest serves a fake GitHub OAuth provider backed by fixed
// fixtures, for integration tests and local runs.
package githubtest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Fixture ties an authorization code to the token and profile it yields.
type Fixture struct {
	Code        string
	AccessToken string
	Email       string
	Age         int
}

// DefaultFixtures returns the four members used by the e2e suite.
func DefaultFixtures() []Fixture {
	return []Fixture{
		{Code: "aofijeowifjaoief", AccessToken: "access_token_1", Email: "email1@email.com", Age: 20},
		{Code: "fau3nfin93dmn", AccessToken: "access_token_2", Email: "email2@email.com", Age: 21},
		{Code: "afnm93fmdodf", AccessToken: "access_token_3", Email: "email3@email.com", Age: 22},
		{Code: "fm04fndkaladmd", AccessToken: "access_token_4", Email: "email4@email.com", Age: 23},
	}
}

// NewFixture returns a fixture with a fresh code and token for email.
func NewFixture(email string, age int) Fixture {
	return Fixture{Code: uuid.NewString(), AccessToken: uuid.NewString(), Email: email, Age: age}
}

type AccessTokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
}

type ProfileResponse struct {
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// Provider answers the two GitHub endpoints the login flow calls.
type Provider struct {
	byCode  map[string]Fixture
	byToken map[string]Fixture
}

func NewProvider(fixtures []Fixture) *Provider {
	p := &Provider{
		byCode:  make(map[string]Fixture, len(fixtures)),
		byToken: make(map[string]Fixture, len(fixtures)),
	}
	for _, f := range fixtures {
		p.byCode[f.Code] = f
		p.byToken[f.AccessToken] = f
	}
	return p
}

// Routes mounts POST /login/oauth/access_token and GET /user.
func (p *Provider) Routes() func(chi.Router) {
	return func(r chi.Router) {
		r.Post("/login/oauth/access_token", p.accessToken)
		r.Get("/user", p.user)
	}
}

// Handler returns the provider as a standalone handler, e.g. for httptest.NewServer.
func (p *Provider) Handler() http.Handler {
	r := chi.NewRouter()
	r.Group(p.Routes())
	return r
}

func (p *Provider) accessToken(w http.ResponseWriter, r *http.Request) {
	var req AccessTokenRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_verification_code"})
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_verification_code"})
			return
		}
		req.ClientID = r.PostForm.Get("client_id")
		req.ClientSecret = r.PostForm.Get("client_secret")
		req.Code = r.PostForm.Get("code")
	}

	fixture, ok := p.byCode[req.Code]
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_verification_code"})
		return
	}
	writeJSON(w, http.StatusOK, AccessTokenResponse{AccessToken: fixture.AccessToken, TokenType: "bearer"})
}

func (p *Provider) user(w http.ResponseWriter, r *http.Request) {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Requires authentication"})
		return
	}
	fixture, ok := p.byToken[strings.TrimSpace(parts[1])]
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
		return
	}
	writeJSON(w, http.StatusOK, ProfileResponse{Email: fixture.Email, Age: fixture.Age})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
