package database

import (
	"context"
	"sort"
	"sync"

	"github.com/giannis84/subway-favorites/internal/models"
)

// MockRepository is a simple in-memory repository intended for unit tests only.
// It implements FavoritesRepository, SectionsRepository and MembersRepository.
type MockRepository struct {
	mu        sync.RWMutex
	favorites map[string]map[int64]*models.Favorite
	stations  map[int64]models.Station
	sections  []models.Section
	members   map[string]*models.Member
	nextID    int64
}

// NewMockRepository returns a MockRepository holding the given stations and sections.
func NewMockRepository(stations []models.Station, sections []models.Section) *MockRepository {
	r := &MockRepository{
		favorites: make(map[string]map[int64]*models.Favorite),
		stations:  make(map[int64]models.Station, len(stations)),
		sections:  append([]models.Section(nil), sections...),
		members:   make(map[string]*models.Member),
	}
	for _, s := range stations {
		r.stations[s.ID] = s
	}
	return r
}

func (r *MockRepository) GetMemberFavoritesFromDB(_ context.Context, memberID string) ([]*models.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memberFavorites := r.favorites[memberID]
	result := make([]*models.Favorite, 0, len(memberFavorites))
	for _, fav := range memberFavorites {
		result = append(result, fav)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MockRepository) AddFavoriteInDB(_ context.Context, favorite *models.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	source, ok := r.stations[favorite.Source.ID]
	if !ok {
		return ErrUnknownStation
	}
	target, ok := r.stations[favorite.Target.ID]
	if !ok {
		return ErrUnknownStation
	}

	if _, exists := r.favorites[favorite.MemberID]; !exists {
		r.favorites[favorite.MemberID] = make(map[int64]*models.Favorite)
	}

	r.nextID++
	stored := *favorite
	stored.ID = r.nextID
	stored.Source = source
	stored.Target = target
	r.favorites[favorite.MemberID][stored.ID] = &stored

	favorite.ID = stored.ID
	return nil
}

func (r *MockRepository) DeleteFavoriteFromDB(_ context.Context, memberID string, favoriteID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	memberFavorites, exists := r.favorites[memberID]
	if !exists {
		return ErrNotFound
	}

	if _, exists := memberFavorites[favoriteID]; !exists {
		return ErrNotFound
	}

	delete(r.favorites[memberID], favoriteID)
	return nil
}

func (r *MockRepository) GetSectionsFromDB(_ context.Context) ([]models.Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Section(nil), r.sections...), nil
}

func (r *MockRepository) FindOrCreateMemberInDB(_ context.Context, email string, age int) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[email]
	if !ok {
		m = &models.Member{ID: int64(len(r.members) + 1), Email: email}
		r.members[email] = m
	}
	m.Age = age

	member := *m
	return &member, nil
}
