package subway

import (
	"context"
	"errors"
	"testing"

	"github.com/giannis84/subway-favorites/internal/database"
	"github.com/giannis84/subway-favorites/internal/models"
)

// testSections mirrors the sample network: 1-2-3 and 1-4-3 are connected,
// 5-6 is a separate component, 7 has no sections.
func testSections() []models.Section {
	return []models.Section{
		{LineID: 1, UpStationID: 1, DownStationID: 2, Distance: 10},
		{LineID: 2, UpStationID: 2, DownStationID: 3, Distance: 10},
		{LineID: 3, UpStationID: 1, DownStationID: 4, Distance: 2},
		{LineID: 3, UpStationID: 4, DownStationID: 3, Distance: 3},
		{LineID: 4, UpStationID: 5, DownStationID: 6, Distance: 4},
	}
}

type failingSections struct{}

func (failingSections) GetSectionsFromDB(context.Context) ([]models.Section, error) {
	return nil, errors.New("db down")
}

func TestPathFinder_FindPath(t *testing.T) {
	repo := database.NewMockRepository(nil, testSections())
	finder := NewPathFinder(repo)

	tests := []struct {
		name    string
		source  int64
		target  int64
		wantErr error
	}{
		{name: "adjacent stations", source: 1, target: 2},
		{name: "transfer between lines", source: 2, target: 4},
		{name: "reverse direction", source: 3, target: 1},
		{name: "source without sections", source: 7, target: 1, wantErr: ErrStationNotOnAnyPath},
		{name: "target without sections", source: 1, target: 7, wantErr: ErrStationNotOnAnyPath},
		{name: "unknown station", source: 100, target: 1, wantErr: ErrStationNotOnAnyPath},
		{name: "disconnected components", source: 1, target: 6, wantErr: ErrPathNotConnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := finder.FindPath(context.Background(), tt.source, tt.target)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestPathFinder_RepositoryError(t *testing.T) {
	err := NewPathFinder(failingSections{}).FindPath(context.Background(), 1, 2)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrStationNotOnAnyPath) || errors.Is(err, ErrPathNotConnected) {
		t.Errorf("repository failure must not look like a path error: %v", err)
	}
}

func TestGraph_Connected(t *testing.T) {
	g := NewGraph(testSections())

	if !g.Connected(5, 6) {
		t.Error("expected 5 and 6 to be connected")
	}
	if g.Connected(6, 2) {
		t.Error("expected 6 and 2 to be disconnected")
	}
	if !g.Connected(3, 3) {
		t.Error("expected a station on the network to reach itself")
	}
	if g.Connected(7, 7) {
		t.Error("expected a station without sections to be unreachable")
	}
}
