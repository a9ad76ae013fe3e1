package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/babitas-kitchen/storefront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for catalog data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// InMemoryProductRepository serves the static menu from memory
type InMemoryProductRepository struct {
	products   map[int64]models.Product
	order      []int64
	categories []models.Category
}

// NewInMemoryProductRepository creates a repository with the kitchen's menu
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return NewInMemoryProductRepositoryWith(seedProducts(), seedCategories())
}

// NewInMemoryProductRepositoryWith creates a repository over the given data.
// Products are listed in ascending id order.
func NewInMemoryProductRepositoryWith(products []models.Product, categories []models.Category) *InMemoryProductRepository {
	byID := make(map[int64]models.Product, len(products))
	order := make([]int64, 0, len(products))
	for _, p := range products {
		if _, dup := byID[p.ID]; !dup {
			order = append(order, p.ID)
		}
		byID[p.ID] = p
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	cats := make([]models.Category, len(categories))
	copy(cats, categories)

	return &InMemoryProductRepository{
		products:   byID,
		order:      order,
		categories: cats,
	}
}

// GetAll returns all products
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.products[id])
	}
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Categories returns the categories in display order, sentinel first
func (r *InMemoryProductRepository) Categories(ctx context.Context) ([]models.Category, error) {
	cats := make([]models.Category, len(r.categories))
	copy(cats, r.categories)
	return cats, nil
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: models.AllProducts, Icon: "🍽️", Color: "google-blue"},
		{ID: 2, Name: "Curries", Icon: "🍛", Color: "google-red"},
		{ID: 3, Name: "Breads", Icon: "🫓", Color: "google-yellow"},
		{ID: 4, Name: "Rice", Icon: "🍚", Color: "google-green"},
		{ID: 5, Name: "Snacks", Icon: "🥟", Color: "google-blue"},
		{ID: 6, Name: "Sweets", Icon: "🍮", Color: "google-red"},
		{ID: 7, Name: "Beverages", Icon: "🥤", Color: "google-green"},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Butter Chicken", Description: "Tandoori chicken simmered in a buttery tomato gravy", Price: 280, Category: "curries", Badge: "Bestseller", OriginalPrice: 320, Rating: 4.8, PrepTime: "25 min", Image: "/images/butter-chicken.jpg"},
		{ID: 2, Name: "Dal Makhani", Description: "Black lentils slow cooked overnight with cream", Price: 180, Category: "curries", Rating: 4.7, PrepTime: "20 min", Image: "/images/dal-makhani.jpg"},
		{ID: 3, Name: "Palak Paneer", Description: "Cottage cheese in a smooth spinach gravy", Price: 220, Category: "curries", Rating: 4.6, PrepTime: "20 min", Image: "/images/palak-paneer.jpg"},
		{ID: 4, Name: "Butter Naan", Description: "Soft leavened bread from the tandoor", Price: 40, Category: "breads", Rating: 4.5, PrepTime: "10 min", Image: "/images/butter-naan.jpg"},
		{ID: 5, Name: "Aloo Paratha", Description: "Whole wheat flatbread stuffed with spiced potato", Price: 60, Category: "breads", Badge: "Homestyle", Rating: 4.7, PrepTime: "15 min", Image: "/images/aloo-paratha.jpg"},
		{ID: 6, Name: "Veg Biryani", Description: "Basmati rice layered with vegetables and saffron", Price: 200, Category: "rice", Rating: 4.5, PrepTime: "30 min", Image: "/images/veg-biryani.jpg"},
		{ID: 7, Name: "Jeera Rice", Description: "Basmati rice tempered with cumin", Price: 120, Category: "rice", Rating: 4.3, PrepTime: "15 min", Image: "/images/jeera-rice.jpg"},
		{ID: 8, Name: "Samosa (2 pcs)", Description: "Crisp pastry filled with spiced potato and peas", Price: 50, Category: "snacks", Badge: "Popular", Rating: 4.6, PrepTime: "10 min", Image: "/images/samosa.jpg"},
		{ID: 9, Name: "Pani Puri", Description: "Hollow puris with tangy tamarind water", Price: 70, Category: "snacks", Rating: 4.8, PrepTime: "10 min", Image: "/images/pani-puri.jpg"},
		{ID: 10, Name: "Gulab Jamun", Description: "Milk dumplings soaked in rose syrup", Price: 90, Category: "sweets", OriginalPrice: 110, Rating: 4.9, PrepTime: "5 min", Image: "/images/gulab-jamun.jpg"},
		{ID: 11, Name: "Gajar Halwa", Description: "Slow cooked carrot pudding with nuts", Price: 120, Category: "sweets", Badge: "Seasonal", Rating: 4.7, PrepTime: "5 min", Image: "/images/gajar-halwa.jpg"},
		{ID: 12, Name: "Masala Chai", Description: "Spiced milk tea", Price: 30, Category: "beverages", Rating: 4.8, PrepTime: "5 min", Image: "/images/masala-chai.jpg"},
		{ID: 13, Name: "Sweet Lassi", Description: "Chilled yogurt drink", Price: 60, Category: "beverages", Rating: 4.6, PrepTime: "5 min", Image: "/images/sweet-lassi.jpg"},
	}
}
