package service

import (
	"context"

	"github.com/noah-isme/campusai-api/internal/models"
)

type resourceRepository interface {
	List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
	Categories(ctx context.Context) ([]string, error)
}

// ResourceService serves the learning resources library.
type ResourceService struct {
	repo resourceRepository
}

// NewResourceService constructs a ResourceService.
func NewResourceService(repo resourceRepository) *ResourceService {
	return &ResourceService{repo: repo}
}

// List returns resources, optionally narrowed by category and search term.
func (s *ResourceService) List(ctx context.Context, category, search string) ([]models.Resource, error) {
	return s.repo.List(ctx, models.ResourceFilter{Category: category, Search: search})
}

// Categories returns the distinct resource categories.
func (s *ResourceService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
