package services

import (
	"context"
	"errors"
	"fmt"

	"boco.agency/internal/models"
)

// ErrProjectNotFound is returned for an index outside the project list
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	source ContentSource
	assets AssetResolver
}

// NewProjectService creates a new ProjectService
func NewProjectService(source ContentSource, assets AssetResolver) *ProjectService {
	return &ProjectService{source: source, assets: assets}
}

// GetAll returns all projects, an empty list when none are published
func (s *ProjectService) GetAll(ctx context.Context) ([]models.ProjectEntry, error) {
	recs, err := s.source.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	projects := MapProjects(recs, s.assets)
	if projects == nil {
		projects = []models.ProjectEntry{}
	}
	return projects, nil
}

// GetByIndex returns the project at carousel position i
func (s *ProjectService) GetByIndex(ctx context.Context, i int) (*models.ProjectEntry, error) {
	projects, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(projects) {
		return nil, fmt.Errorf("%w: %d", ErrProjectNotFound, i)
	}
	return &projects[i], nil
}

// Step moves a carousel at index one slide in d over the current project list.
// Returns the new position and the project it lands on, nil when there are none.
func (s *ProjectService) Step(ctx context.Context, index int, d Direction) (models.CarouselPosition, *models.ProjectEntry, error) {
	projects, err := s.GetAll(ctx)
	if err != nil {
		return models.CarouselPosition{}, nil, err
	}

	c := NewCarousel(len(projects))
	c.Seek(index)
	if _, err := c.Step(d); err != nil {
		return c.Position(), nil, err
	}

	pos := c.Position()
	if pos.Count == 0 {
		return pos, nil, nil
	}
	return pos, &projects[pos.Index], nil
}
