package repositories

import "boutique/internal/models"

// UserRepository defines the interface for user data access. The cart
// is part of the user document, so cart persistence goes through here.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetCart(userID string) (models.Cart, error)
	SaveCart(userID string, cart models.Cart) error
}
