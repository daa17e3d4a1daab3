package services

import (
	"context"

	"github.com/mertcan/coursehub/internal/app/models"
)

// TaxonomyService exposes the category and subject catalog.
type TaxonomyService interface {
	GetCategories(ctx context.Context) ([]*models.Category, error)
	GetSubjectsByCategory(ctx context.Context, categoryID int64) ([]*models.Subject, error)
}

type taxonomyServiceImpl struct {
	taxonomyRepo TaxonomyStore
}

// NewTaxonomyService creates a new TaxonomyService.
func NewTaxonomyService(taxonomyRepo TaxonomyStore) TaxonomyService {
	return &taxonomyServiceImpl{taxonomyRepo: taxonomyRepo}
}

func (s *taxonomyServiceImpl) GetCategories(ctx context.Context) ([]*models.Category, error) {
	return s.taxonomyRepo.GetCategories(ctx)
}

func (s *taxonomyServiceImpl) GetSubjectsByCategory(ctx context.Context, categoryID int64) ([]*models.Subject, error) {
	return s.taxonomyRepo.GetSubjectsByCategory(ctx, categoryID)
}
