package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/giannis84/subway-favorites/internal/database"
	"github.com/giannis84/subway-favorites/internal/github"
)

// Login turns a GitHub authorization code into a member access token.
type Login struct {
	provider IdentityProvider
	members  database.MembersRepository
	issuer   TokenIssuer
}

func NewLogin(provider IdentityProvider, members database.MembersRepository, issuer TokenIssuer) *Login {
	return &Login{provider: provider, members: members, issuer: issuer}
}

// LoginWithGitHub exchanges code with the provider, creates the member on first
// login and returns a bearer token whose subject is the member id.
func (l *Login) LoginWithGitHub(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", &Error{Kind: KindMissingField, Err: &ValidationError{Errors: []string{"code is required"}}}
	}

	accessToken, err := l.provider.ExchangeCode(ctx, code)
	if err != nil {
		return "", providerError(err)
	}
	profile, err := l.provider.Profile(ctx, accessToken)
	if err != nil {
		return "", providerError(err)
	}

	member, err := l.members.FindOrCreateMemberInDB(ctx, profile.Email, profile.Age)
	if err != nil {
		return "", fmt.Errorf("storing member: %w", err)
	}

	return l.issuer.IssueToken(strconv.FormatInt(member.ID, 10), member.Email)
}

func providerError(err error) error {
	if errors.Is(err, github.ErrInvalidCode) || errors.Is(err, github.ErrInvalidToken) {
		return &Error{Kind: KindUnauthenticated, Err: err}
	}
	return err
}
