package service

import (
	"context"
	"testing"

	"github.com/babitas-kitchen/storefront/internal/models"
	"github.com/babitas-kitchen/storefront/internal/repository"
)

func TestProductService_ListProducts(t *testing.T) {
	svc := NewProductService(repository.NewInMemoryProductRepository())

	tests := []struct {
		name     string
		category string
		want     int
	}{
		{"no category", "", 13},
		{"all products", models.AllProducts, 13},
		{"curries", "Curries", 3},
		{"beverages", "Beverages", 2},
		{"unknown category", "Pizza", 0},
		{"lowercase name does not match", "curries", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := svc.ListProducts(context.Background(), tt.category)
			if err != nil {
				t.Fatalf("ListProducts() error = %v", err)
			}
			if len(products) != tt.want {
				t.Errorf("ListProducts(%q) returned %d products, want %d", tt.category, len(products), tt.want)
			}
		})
	}
}

func TestProductService_GetProduct(t *testing.T) {
	svc := NewProductService(repository.NewInMemoryProductRepository())

	p, err := svc.GetProduct(context.Background(), 12)
	if err != nil {
		t.Fatalf("GetProduct() error = %v", err)
	}
	if p.Name != "Masala Chai" {
		t.Errorf("expected Masala Chai, got %s", p.Name)
	}

	if _, err := svc.GetProduct(context.Background(), 404); err != repository.ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
