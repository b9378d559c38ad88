package routes

import (
	"flock_server/services"

	"github.com/gofiber/fiber/v2"
)

func userRoutes(api fiber.Router) {
	users := api.Group("user")
	users.Post("/login", services.Login)
	users.Get("/list/:username", services.List)
}
