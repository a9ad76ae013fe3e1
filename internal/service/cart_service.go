package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/babitas-kitchen/storefront/internal/cart"
	"github.com/babitas-kitchen/storefront/internal/models"
	"github.com/babitas-kitchen/storefront/internal/repository"
	"github.com/babitas-kitchen/storefront/internal/session"
	"github.com/babitas-kitchen/storefront/internal/view"
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidQuantity = cart.ErrInvalidQuantity
)

// ProductRepository interface for product data access
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// CartService resolves catalog references for cart operations on a session
type CartService struct {
	productRepo ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(productRepo ProductRepository) *CartService {
	return &CartService{
		productRepo: productRepo,
	}
}

// AddToCart adds one unit of the product to the session's cart
func (s *CartService) AddToCart(ctx context.Context, sess *session.Session, productID int64) (models.CartLine, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return models.CartLine{}, ErrInvalidProduct
		}
		return models.CartLine{}, fmt.Errorf("lookup product %d: %w", productID, err)
	}
	return sess.AddToCart(*product), nil
}

// UpdateQuantity sets the quantity of a cart line; zero removes it
func (s *CartService) UpdateQuantity(ctx context.Context, sess *session.Session, productID int64, quantity int) error {
	return sess.UpdateQuantity(productID, quantity)
}

// RemoveFromCart removes a cart line; removing an absent line is not an error
func (s *CartService) RemoveFromCart(ctx context.Context, sess *session.Session, productID int64) {
	sess.RemoveFromCart(productID)
}

// Cart returns the cart panel for the session
func (s *CartService) Cart(ctx context.Context, sess *session.Session) view.CartPanel {
	return view.Cart(ctx, sess)
}

// Storefront composes the full page state for the session
func (s *CartService) Storefront(ctx context.Context, sess *session.Session) (*view.Storefront, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	sf := view.Compose(ctx, sess, products, categories)
	return &sf, nil
}
