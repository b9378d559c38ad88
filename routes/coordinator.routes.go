package routes

import (
	"flock_server/coordinator"

	"github.com/gofiber/fiber/v2"
)

// SetCoordinatorRoutes sets all routes of the coordinator
func SetCoordinatorRoutes(app *fiber.App) {
	app.Post("/heartbeat", coordinator.Heartbeat)
	app.Get("/server/:clientID", coordinator.GetServer)
}
