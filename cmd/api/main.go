package main

import (
	"context"
	"log"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/uzmarket/uzmarket-golang/internal/database"
	"github.com/uzmarket/uzmarket-golang/internal/handlers"
	"github.com/uzmarket/uzmarket-golang/internal/routes"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Database ---
	// A single local SQLite file, created on first run. Schema migrations
	// run inside Open; seeding is guarded so restarts never duplicate the
	// default admin credential or the demo listing.
	store, err := database.Open(database.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	if err := store.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		Store: store,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	// Defaults match the original deployment: all interfaces, port 5000.
	host := os.Getenv("HOST")
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	addr := net.JoinHostPort(host, port)

	log.Printf("Starting UzMarket API server v%s on %s...", handlers.Version, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
