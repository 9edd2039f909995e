package handlers

import (
	"log"

	"boutique/internal/models"
	"boutique/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders. Placement and listing
// belong to the authenticated user; listall and updatestatus belong to
// the admin panel.
type OrderHandler struct {
	orderService *services.OrderService
	validate     *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, userAuth, adminAuth fiber.Handler) {
	orderRoutes := router.Group("/order")
	orderRoutes.Post("/place", userAuth, h.HandlePlaceOrder)
	orderRoutes.Get("/list", userAuth, h.HandleListUserOrders)
	orderRoutes.Get("/listall", adminAuth, h.HandleListAllOrders)
	orderRoutes.Post("/updatestatus", adminAuth, h.HandleUpdateStatus)
}

// PlaceOrderRequest represents the checkout payload assembled by the
// client from its cart and the catalog.
type PlaceOrderRequest struct {
	Items   []models.OrderItem `json:"items" validate:"required,min=1,dive"`
	Amount  float64            `json:"amount" validate:"required,gt=0"`
	Address models.Address     `json:"address" validate:"required"`
}

// UpdateStatusRequest represents the admin status-change payload.
type UpdateStatusRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

// HandlePlaceOrder validates the checkout request and creates an order.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing place order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": validationMessage(err),
		})
	}

	userID := c.Locals("userId").(string)
	order, err := h.orderService.PlaceOrder(userID, req.Items, req.Amount, req.Address)
	if err != nil {
		log.Printf("Error placing order for user %s: %v", userID, err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Order Placed",
		"order":   order,
	})
}

// HandleListUserOrders returns the authenticated user's orders.
func (h *OrderHandler) HandleListUserOrders(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)
	orders, err := h.orderService.ListUserOrders(userID)
	if err != nil {
		log.Printf("Error listing orders for user %s: %v", userID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
	})
}

// HandleListAllOrders returns every order, newest first (admin only).
func (h *OrderHandler) HandleListAllOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListAllOrders()
	if err != nil {
		log.Printf("Error listing all orders: %v", err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
	})
}

// HandleUpdateStatus moves an order through its lifecycle (admin only).
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing order ID or status.",
		})
	}

	if err := h.orderService.UpdateStatus(req.OrderID, req.Status); err != nil {
		log.Printf("Error updating status for order %s: %v", req.OrderID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order status updated successfully.",
	})
}
