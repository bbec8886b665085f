package database

import (
	"context"
	"errors"

	"github.com/giannis84/subway-favorites/internal/models"
)

//go:generate mockgen -source=repository.go -destination=../mock/repository_mock.go -package=mock

var (
	ErrNotFound       = errors.New("favorite not found")
	ErrUnknownStation = errors.New("station does not exist")
)

// FavoritesRepository defines the interface for managing member favorites storage.
type FavoritesRepository interface {
	GetMemberFavoritesFromDB(ctx context.Context, memberID string) ([]*models.Favorite, error)
	// AddFavoriteInDB persists the favorite and sets its ID.
	AddFavoriteInDB(ctx context.Context, favorite *models.Favorite) error
	DeleteFavoriteFromDB(ctx context.Context, memberID string, favoriteID int64) error
}

// SectionsRepository exposes the subway network edges.
type SectionsRepository interface {
	GetSectionsFromDB(ctx context.Context) ([]models.Section, error)
}

// MembersRepository stores members created through the GitHub login flow.
type MembersRepository interface {
	FindOrCreateMemberInDB(ctx context.Context, email string, age int) (*models.Member, error)
}
