// Package subway answers route questions over the subway network stored as
// line sections.
package subway

import (
	"context"
	"errors"
	"fmt"

	"github.com/giannis84/subway-favorites/internal/database"
	"github.com/giannis84/subway-favorites/internal/models"
)

var (
	// ErrStationNotOnAnyPath is returned when a station is not part of any section.
	ErrStationNotOnAnyPath = errors.New("station is not on any path")
	// ErrPathNotConnected is returned when both stations exist but no sections link them.
	ErrPathNotConnected = errors.New("stations are not connected")
)

// Graph is an undirected adjacency list of station ids.
type Graph struct {
	edges map[int64][]int64
}

// NewGraph builds a graph from the given sections.
func NewGraph(sections []models.Section) *Graph {
	g := &Graph{edges: make(map[int64][]int64)}
	for _, s := range sections {
		g.edges[s.UpStationID] = append(g.edges[s.UpStationID], s.DownStationID)
		g.edges[s.DownStationID] = append(g.edges[s.DownStationID], s.UpStationID)
	}
	return g
}

// HasStation reports whether the station appears in at least one section.
func (g *Graph) HasStation(id int64) bool {
	_, ok := g.edges[id]
	return ok
}

// Connected reports whether target is reachable from source.
func (g *Graph) Connected(source, target int64) bool {
	if source == target {
		return g.HasStation(source)
	}

	visited := map[int64]bool{source: true}
	queue := []int64{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range g.edges[current] {
			if next == target {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// PathFinder checks routes against the sections currently stored in the repository.
type PathFinder struct {
	sections database.SectionsRepository
}

func NewPathFinder(sections database.SectionsRepository) *PathFinder {
	return &PathFinder{sections: sections}
}

// FindPath returns nil when a route exists between source and target.
// The network is read on every call.
func (p *PathFinder) FindPath(ctx context.Context, source, target int64) error {
	sections, err := p.sections.GetSectionsFromDB(ctx)
	if err != nil {
		return fmt.Errorf("loading sections: %w", err)
	}

	g := NewGraph(sections)
	for _, id := range []int64{source, target} {
		if !g.HasStation(id) {
			return fmt.Errorf("station %d: %w", id, ErrStationNotOnAnyPath)
		}
	}
	if !g.Connected(source, target) {
		return fmt.Errorf("%d -> %d: %w", source, target, ErrPathNotConnected)
	}
	return nil
}
