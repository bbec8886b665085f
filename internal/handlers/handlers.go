package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giannis84/subway-favorites/internal/database"
	"github.com/giannis84/subway-favorites/internal/models"
	"github.com/giannis84/subway-favorites/internal/subway"
)

// Favorites sequences validation, route checks and store access for the
// favorite operations of one member.
type Favorites struct {
	repo  database.FavoritesRepository
	paths PathFinder
	now   func() time.Time
}

func NewFavorites(repo database.FavoritesRepository, paths PathFinder) *Favorites {
	return &Favorites{repo: repo, paths: paths, now: time.Now}
}

// CreateFavorite stores a new favorite route for memberID and returns its id.
// Nothing is written when any check fails.
func (f *Favorites) CreateFavorite(ctx context.Context, memberID string, req FavoriteRequest) (int64, error) {
	if err := requireMember(memberID); err != nil {
		return 0, err
	}

	route, err := req.Validate()
	if err != nil {
		return 0, err
	}
	if route.Source == route.Target {
		return 0, newError(KindSameSourceAndTarget, "source and target stations must differ (station %d)", route.Source)
	}

	if err := f.paths.FindPath(ctx, route.Source, route.Target); err != nil {
		switch {
		case errors.Is(err, subway.ErrStationNotOnAnyPath):
			return 0, &Error{Kind: KindStationsNotOnAnyPath, Err: err}
		case errors.Is(err, subway.ErrPathNotConnected):
			return 0, &Error{Kind: KindPathNotConnected, Err: err}
		default:
			return 0, fmt.Errorf("finding path: %w", err)
		}
	}

	favorite := &models.Favorite{
		MemberID:  memberID,
		Source:    models.Station{ID: route.Source},
		Target:    models.Station{ID: route.Target},
		CreatedAt: f.now().UTC(),
	}
	if err := f.repo.AddFavoriteInDB(ctx, favorite); err != nil {
		if errors.Is(err, database.ErrUnknownStation) {
			return 0, &Error{Kind: KindStationsNotOnAnyPath, Err: err}
		}
		return 0, err
	}
	return favorite.ID, nil
}

// ListFavorites returns every favorite owned by memberID, oldest first.
func (f *Favorites) ListFavorites(ctx context.Context, memberID string) ([]*models.Favorite, error) {
	if err := requireMember(memberID); err != nil {
		return nil, err
	}

	favorites, err := f.repo.GetMemberFavoritesFromDB(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []*models.Favorite{}
	}
	return favorites, nil
}

// DeleteFavorite removes favoriteID if memberID owns it.
func (f *Favorites) DeleteFavorite(ctx context.Context, memberID string, favoriteID int64) error {
	if err := requireMember(memberID); err != nil {
		return err
	}

	err := f.repo.DeleteFavoriteFromDB(ctx, memberID, favoriteID)
	if errors.Is(err, database.ErrNotFound) {
		return newError(KindNotExistFavorite, "favorite %d does not exist", favoriteID)
	}
	return err
}

func requireMember(memberID string) error {
	if memberID == "" {
		return newError(KindUnauthenticated, "no authenticated member")
	}
	return nil
}
