package routes

import (
	"flock_server/services"

	"github.com/gofiber/fiber/v2"
)

func relationRoutes(api fiber.Router) {
	relations := api.Group("relation")
	relations.Post("/follow", services.Follow)
	relations.Post("/unfollow", services.UnFollow)
}
