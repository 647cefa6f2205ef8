package service

import (
	"context"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/MKhiriev/expense-tracker/models"
)

// categoryService is the concrete implementation of CategoryService.
// Categories are global: they are not scoped to any user.
type categoryService struct {
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

// NewCategoryService constructs a CategoryService backed by the given
// repository.
func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

// CreateCategory adds a new category. Name is required; Description may be
// omitted.
func (c *categoryService) CreateCategory(ctx context.Context, payload models.CategoryUpsert) (models.Category, error) {
	log := logger.FromContext(ctx)

	if payload.Name == nil || *payload.Name == "" {
		log.Error().Msg("invalid category data provided")
		return models.Category{}, ErrInvalidDataProvided
	}

	return c.categoryRepository.CreateCategory(ctx, models.Category{
		Name:        *payload.Name,
		Description: payload.Description,
	})
}

// GetCategories lists categories in insertion order.
func (c *categoryService) GetCategories(ctx context.Context, page store.Page) ([]models.Category, error) {
	return c.categoryRepository.GetCategories(ctx, page)
}

// SeedDefaultCategories inserts the built-in category set when the table is
// empty. Safe to call on every start.
func (c *categoryService) SeedDefaultCategories(ctx context.Context) (int, error) {
	return c.categoryRepository.SeedDefaultCategories(ctx)
}
