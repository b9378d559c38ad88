package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"flock_server/config"
	"flock_server/coordinator"
	"flock_server/errors"
	"flock_server/global"
	"flock_server/routes"

	fiber "github.com/gofiber/fiber/v2"
)

func main() {

	configPath := flag.String("config", "./config.json", "path to config.json")
	flag.Parse()

	errors.HandleFatalError(config.Load(*configPath))
	errors.HandleFatalError(global.InitializeLoggers("coordinator"))

	coordinator.InitializeTracker(time.Duration(config.Config.Coordinator.StalenessSeconds) * time.Second)

	app := fiber.New()
	defer app.Shutdown()

	routes.SetCoordinatorRoutes(app)

	fmt.Println("Starting coordinator on port: " + config.Config.Coordinator.Port)
	log.Fatal(app.Listen(":" + config.Config.Coordinator.Port))
}
