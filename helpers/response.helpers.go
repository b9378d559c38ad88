package helpers

import (
	"flock_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// OKResponse sends a successful request/response
func OKResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(schemas.ErrorResponse{
		Error: false,
	})
}

// StatusOK sends a processed request with a successful or informational status
func StatusOK(c *fiber.Ctx, status string) error {
	return c.Status(fiber.StatusOK).JSON(schemas.StatusResponse{
		OK:     true,
		Status: status,
	})
}

// StatusReject sends a processed request that was semantically rejected;
// the transport still completes so clients can tell this apart from an
// RPC failure
func StatusReject(c *fiber.Ctx, status string) error {
	return c.Status(fiber.StatusOK).JSON(schemas.StatusResponse{
		OK:     false,
		Status: status,
	})
}
