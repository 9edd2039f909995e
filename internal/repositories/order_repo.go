package repositories

import "boutique/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	// GetByUser returns the orders owned by userID, newest first.
	GetByUser(userID string) ([]models.Order, error)
	// GetAll returns every order, newest first.
	GetAll() ([]models.Order, error)
	UpdateStatus(id string, status models.OrderStatus) error
	// Orders are never deleted in normal operation.
}
