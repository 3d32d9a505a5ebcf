// Command authserver runs the reference authentication backend.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"eventwall/internal/authserver"
	"eventwall/internal/config"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := authserver.OpenDatabase(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	srv := authserver.NewServer(cfg, db)

	app := fiber.New(fiber.Config{
		AppName: "EventWall Auth API",
	})
	srv.SetupRoutes(app)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down auth server...")
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
