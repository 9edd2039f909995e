package middleware

import (
	"log"
	"strings"

	"boutique/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired checks the token header for a valid user token and
// stores the resolved user ID in the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("token")
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Not authorized. Login Again.",
			})
		}

		userID, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			message := "Authorization Error"
			if strings.Contains(err.Error(), "expired") {
				message = "Token expired. Login Again."
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": message,
			})
		}

		c.Locals("userId", userID)
		return c.Next()
	}
}

// AdminRequired checks the token header for a valid token carrying the
// admin claim.
func AdminRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("token")
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Not authorized. Login Again.",
			})
		}

		if err := authService.ValidateAdminToken(tokenString); err != nil {
			log.Printf("Admin token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Not authorized as admin.",
			})
		}

		return c.Next()
	}
}
