package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"flock_server/config"
	"flock_server/errors"
	"flock_server/global"
	"flock_server/helpers"
	"flock_server/routes"

	fiber "github.com/gofiber/fiber/v2"
)

func main() {

	configPath := flag.String("config", "./config.json", "path to config.json")
	flag.Parse()

	errors.HandleFatalError(config.Load(*configPath))
	errors.HandleFatalError(global.InitializeLoggers("shard-" + config.Config.Shard.Port))

	app := fiber.New()
	defer app.Shutdown()

	routes.SetShardRoutes(app)

	ctx, cancel := context.WithCancel(global.Context)
	defer cancel()
	go helpers.StartHeartbeat(ctx)

	fmt.Println("Starting shard server on port: " + config.Config.Shard.Port)
	log.Fatal(app.Listen(":" + config.Config.Shard.Port))
}
