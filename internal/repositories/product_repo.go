package repositories

import "boutique/internal/models"

// ProductRepository defines the interface for product data access.
// The storefront only reads the catalog; Create exists for seeding.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
}
