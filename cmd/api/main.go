package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	cache "github.com/patrickmn/go-cache"
	"github.com/zyla999/eco-directory/internal/database"
	"github.com/zyla999/eco-directory/internal/geocode"
	"github.com/zyla999/eco-directory/internal/handlers"
	"github.com/zyla999/eco-directory/internal/routes"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. --- Application Setup ---
	// The active-store snapshot is memoized for a minute; every admin write
	// flushes it, so the TTL only matters for out-of-band DB changes.
	app := &handlers.Handlers{
		DB:       db,
		Cache:    cache.New(time.Minute, 5*time.Minute),
		Geocoder: geocode.NewClient(),
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting Eco Directory API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
