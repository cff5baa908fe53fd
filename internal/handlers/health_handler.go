package handlers

import "github.com/gofiber/fiber/v2"

// HealthMessage is reported by the health endpoint.
const HealthMessage = "Adam's Kustom Badges API is running"

// HandleHealth reports that the API is up. It does not probe the store.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"message": HealthMessage,
	})
}
