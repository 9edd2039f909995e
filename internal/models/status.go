package models

import "fmt"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Order Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus converts a raw string into an OrderStatus, rejecting
// anything outside the four defined states.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Terminal reports whether no further transitions are allowed.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// rank orders the forward progression of the lifecycle. Cancelled sits
// outside the progression and is handled separately.
func (s OrderStatus) rank() int {
	switch s {
	case StatusProcessing:
		return 0
	case StatusShipped:
		return 1
	case StatusDelivered:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether the lifecycle permits moving from s
// to next: strictly forward through Processing -> Shipped -> Delivered,
// with Cancelled reachable from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return next.rank() > s.rank()
}
