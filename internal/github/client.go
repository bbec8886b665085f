// Package github talks to GitHub's OAuth and user APIs for the login flow.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

var (
	ErrInvalidCode  = errors.New("github rejected the authorization code")
	ErrInvalidToken = errors.New("github rejected the access token")
)

// Config points the client at GitHub or at a compatible fake.
type Config struct {
	ClientID     string
	ClientSecret string
	// BaseURL hosts /login/oauth/*, APIURL hosts /user.
	BaseURL string
	APIURL  string
	Timeout time.Duration
}

// Profile is the subset of the GitHub user resource used to identify members.
type Profile struct {
	Email string `json:"email"`
	Age   int    `json:"age"`
}

type Client struct {
	oauth *oauth2.Config
	api   *resty.Client
	http  *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	base := strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       []string{"user:email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   base + "/login/oauth/authorize",
				TokenURL:  base + "/login/oauth/access_token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		api: resty.New().
			SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json"),
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// AuthCodeURL returns the URL a browser is sent to in order to obtain a code.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for a GitHub access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return "", fmt.Errorf("%w: %s", ErrInvalidCode, retrieveErr.Response.Status)
		}
		return "", fmt.Errorf("exchanging code: %w", err)
	}
	return token.AccessToken, nil
}

// Profile fetches the user behind accessToken.
func (c *Client) Profile(ctx context.Context, accessToken string) (*Profile, error) {
	var profile Profile
	resp, err := c.api.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&profile).
		Get("/user")
	if err != nil {
		return nil, fmt.Errorf("profile request: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return nil, ErrInvalidToken
	case resp.IsError():
		return nil, fmt.Errorf("profile request: http %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	if profile.Email == "" {
		return nil, errors.New("profile response missing email")
	}
	return &profile, nil
}
