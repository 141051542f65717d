package repositories

import (
	"jerseystore/internal/models"
)

// ProductRepository defines the interface for catalog data access.
// The catalog is seeded at startup; Create exists for seeding and tests.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
}
