package handlers

import (
	"log"

	"boutique/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart. All routes
// require user authentication; the owning user comes from the token.
type CartHandler struct {
	cartService *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router, userAuth fiber.Handler) {
	cartRoutes := router.Group("/user/cart", userAuth)
	cartRoutes.Post("/add", h.HandleAdd)
	cartRoutes.Post("/update", h.HandleUpdate)
	// POST so the token header travels the same way as the mutations.
	cartRoutes.Post("/get", h.HandleGet)
}

// AddToCartRequest represents the request body for adding an item.
type AddToCartRequest struct {
	ItemID string `json:"itemId"`
	Size   string `json:"size"`
}

// UpdateCartRequest represents the request body for setting a quantity.
type UpdateCartRequest struct {
	ItemID   string `json:"itemId"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// HandleAdd increments the quantity for one (item, size) pair.
func (h *CartHandler) HandleAdd(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart add request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	userID := c.Locals("userId").(string)
	if err := h.cartService.AddItem(userID, req.ItemID, req.Size); err != nil {
		log.Printf("Error adding to cart for user %s: %v", userID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Added To Cart",
	})
}

// HandleUpdate sets the absolute quantity for one (item, size) pair; a
// quantity of zero or less removes it.
func (h *CartHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	userID := c.Locals("userId").(string)
	if err := h.cartService.UpdateQuantity(userID, req.ItemID, req.Size, req.Quantity); err != nil {
		log.Printf("Error updating cart for user %s: %v", userID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cart Updated",
	})
}

// HandleGet returns the authoritative cart for the authenticated user.
func (h *CartHandler) HandleGet(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)
	cart, err := h.cartService.GetCart(userID)
	if err != nil {
		log.Printf("Error fetching cart for user %s: %v", userID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"cartData": cart,
	})
}
