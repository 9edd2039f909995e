package services

import (
	"errors"
	"fmt"
	"sync"

	"boutique/internal/apperrors"
	"boutique/internal/models"
	"boutique/internal/repositories"
)

// CartService handles business logic for the per-user shopping cart.
// Mutations for the same user are serialized with a per-user mutex so
// overlapping requests cannot lose each other's read-modify-write.
type CartService struct {
	userRepo repositories.UserRepository
	locks    sync.Map // userID -> *sync.Mutex
}

// NewCartService creates a new CartService.
func NewCartService(userRepo repositories.UserRepository) *CartService {
	return &CartService{
		userRepo: userRepo,
	}
}

func (s *CartService) userLock(userID string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// AddItem increments the quantity for (itemID, size) by one and
// persists the cart.
func (s *CartService) AddItem(userID, itemID, size string) error {
	if itemID == "" || size == "" {
		return fmt.Errorf("%w: item ID and size are required", apperrors.ErrInvalidInput)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.userRepo.GetCart(userID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	cart.Add(itemID, size)
	if err := s.userRepo.SaveCart(userID, cart); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// UpdateQuantity sets the absolute quantity for (itemID, size). A
// quantity of zero or less removes the entry. The entry must already
// exist; updating an absent item is rejected rather than creating it.
func (s *CartService) UpdateQuantity(userID, itemID, size string, quantity int) error {
	if itemID == "" || size == "" {
		return fmt.Errorf("%w: item ID and size are required", apperrors.ErrInvalidInput)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.userRepo.GetCart(userID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	if !cart.Has(itemID, size) {
		return fmt.Errorf("%w: item or size not in cart", apperrors.ErrInvalidInput)
	}
	cart.SetQuantity(itemID, size, quantity)
	if err := s.userRepo.SaveCart(userID, cart); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// GetCart returns the user's cart. A missing user yields an empty cart,
// never an error.
func (s *CartService) GetCart(userID string) (models.Cart, error) {
	cart, err := s.userRepo.GetCart(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return models.NewCart(), nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart, nil
}

// ClearCart replaces the user's cart with an empty mapping.
func (s *CartService) ClearCart(userID string) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.userRepo.SaveCart(userID, models.NewCart()); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
