package services

import (
	"fmt"
	"log"
	"math"
	"time"

	"boutique/internal/apperrors"
	"boutique/internal/models"
	"boutique/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EventPublisher publishes order lifecycle events to the message broker.
type EventPublisher interface {
	PublishJSON(routingKey string, payload interface{}) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	cartService *CartService
	publisher   EventPublisher
	deliveryFee float64
	validate    *validator.Validate
}

// NewOrderService creates a new OrderService. publisher may be nil, in
// which case event publication is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, cartService *CartService, publisher EventPublisher, deliveryFee float64) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartService: cartService,
		publisher:   publisher,
		deliveryFee: deliveryFee,
		validate:    validator.New(),
	}
}

// PlaceOrder validates the checkout request, snapshots line items from
// the catalog, persists the order and then clears the user's cart.
// The order is the durable fact: a cart-clear failure is logged but
// never undoes an already-placed order.
func (s *OrderService) PlaceOrder(userID string, items []models.OrderItem, amount float64, address models.Address) (*models.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", apperrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: order amount must be positive", apperrors.ErrInvalidInput)
	}
	if err := s.validate.Struct(address); err != nil {
		return nil, fmt.Errorf("%w: invalid shipping address: %v", apperrors.ErrInvalidInput, err)
	}

	// Prices and names come from the catalog, not the client, so the
	// snapshot cannot be forged. The supplied amount must match the
	// recomputed total.
	var total float64
	snapshot := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" || item.Size == "" {
			return nil, fmt.Errorf("%w: every item needs a product ID and size", apperrors.ErrInvalidInput)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: every item needs a positive quantity", apperrors.ErrInvalidInput)
		}
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: product %s not in catalog", apperrors.ErrInvalidInput, item.ProductID)
		}
		snapshot = append(snapshot, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
		})
		total += product.Price * float64(item.Quantity)
	}
	total += s.deliveryFee
	if math.Abs(total-amount) > 0.009 {
		return nil, fmt.Errorf("%w: order amount %.2f does not match computed total %.2f", apperrors.ErrInvalidInput, amount, total)
	}

	order := &models.Order{
		ID:      uuid.New().String(),
		UserID:  userID,
		Items:   snapshot,
		Amount:  total,
		Address: address,
		Status:  models.StatusProcessing,
		Date:    time.Now(),
		Payment: false,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publish("order.created", map[string]interface{}{
		"orderId": order.ID,
		"userId":  order.UserID,
		"status":  order.Status,
		"amount":  order.Amount,
	})

	if err := s.cartService.ClearCart(userID); err != nil {
		log.Printf("Warning: order %s placed but cart for user %s was not cleared: %v", order.ID, userID, err)
	}

	return order, nil
}

// ListUserOrders returns the orders owned by userID, newest first.
func (s *OrderService) ListUserOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// ListAllOrders returns every order, newest first.
func (s *OrderService) ListAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateStatus moves an order through its lifecycle. The target status
// must be one of the defined states and the transition must be allowed:
// forward through Processing -> Shipped -> Delivered, or Cancelled from
// any non-terminal state.
func (s *OrderService) UpdateStatus(orderID, status string) error {
	next, err := models.ParseOrderStatus(status)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return fmt.Errorf("failed to load order: %w", err)
	}
	if !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move order from %q to %q", apperrors.ErrInvalidInput, order.Status, next)
	}

	if err := s.orderRepo.UpdateStatus(orderID, next); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	s.publish("order.status_updated", map[string]interface{}{
		"orderId": orderID,
		"status":  next,
	})
	return nil
}

func (s *OrderService) publish(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishJSON(routingKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
