package routes

import (
	"flock_server/config"
	"flock_server/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

// SetShardRoutes sets all routes of the shard server
func SetShardRoutes(app *fiber.App) {
	api := app.Group(config.Config.Version)
	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
	}))

	app.Use("/timeline", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/timeline", websocket.New(services.Timeline))

	userRoutes(api)
	relationRoutes(api)
}
