package handlers

import (
	"context"

	"github.com/giannis84/subway-favorites/internal/github"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/handlers_mock.go -package=mock

// PathFinder checks that a route exists between two stations.
// Implementations return subway.ErrStationNotOnAnyPath or subway.ErrPathNotConnected
// (possibly wrapped) when it does not.
type PathFinder interface {
	FindPath(ctx context.Context, source, target int64) error
}

// IdentityProvider resolves an OAuth authorization code to a profile.
type IdentityProvider interface {
	ExchangeCode(ctx context.Context, code string) (string, error)
	Profile(ctx context.Context, accessToken string) (*github.Profile, error)
}

type TokenIssuer interface {
	IssueToken(memberID, email string) (string, error)
}
