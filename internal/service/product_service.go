package service

import (
	"context"

	"github.com/babitas-kitchen/storefront/internal/catalog"
	"github.com/babitas-kitchen/storefront/internal/models"
	"github.com/babitas-kitchen/storefront/internal/repository"
)

// ProductService handles business logic for the menu
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns the products of the named category.
// An empty category or models.AllProducts returns the whole menu.
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = models.AllProducts
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Filter(products, categories, category), nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCategories returns the menu categories, "All Products" first
func (s *ProductService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.Categories(ctx)
}
