package handlers

import (
	"log"

	"boutique/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog. The
// storefront only reads the catalog.
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/product")
	productRoutes.Get("/list", h.HandleList)
	productRoutes.Get("/:id", h.HandleGetByID)
}

// HandleList returns every product in the catalog.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
	})
}

// HandleGetByID returns a single product.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.productService.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product %s: %v", productID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}
