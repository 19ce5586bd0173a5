package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/joho/godotenv"
	"github.com/zyla999/eco-directory/internal/database"
	"github.com/zyla999/eco-directory/internal/geocode"
)

// geocode-backfill walks every physical store that is missing coordinates,
// asks Nominatim for them, and writes back what it finds. Safe to re-run;
// stores that still miss just stay without coordinates.
//
// Runs at one request every 1.1 seconds, so expect roughly a minute per 50
// stores.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, address, city, state, country
		FROM stores
		WHERE lat IS NULL AND type != 'online'
		ORDER BY id ASC`)
	if err != nil {
		log.Fatalf("Failed to query stores: %v", err)
	}

	type candidate struct {
		id      string
		address sql.NullString
		city    sql.NullString
		state   sql.NullString
		country string
	}

	candidates := []candidate{}
	for rows.Next() {
		var c candidate
		if err := rows.Scan(&c.id, &c.address, &c.city, &c.state, &c.country); err != nil {
			log.Fatalf("Failed to scan row: %v", err)
		}
		candidates = append(candidates, c)
	}
	rows.Close()

	log.Printf("Found %d stores missing coordinates", len(candidates))

	geocoder := geocode.NewClient()
	ctx := context.Background()

	resolved, missed := 0, 0
	for _, c := range candidates {
		result, err := geocoder.Geocode(ctx, c.address.String, c.city.String, c.state.String, c.country)
		if err != nil {
			log.Printf("  %s: geocode error: %v", c.id, err)
			missed++
			continue
		}
		if result == nil {
			log.Printf("  %s: no match (%s, %s)", c.id, c.city.String, c.state.String)
			missed++
			continue
		}

		if _, err := db.Exec("UPDATE stores SET lat = ?, lng = ? WHERE id = ?",
			result.Lat, result.Lng, c.id); err != nil {
			log.Printf("  %s: update failed: %v", c.id, err)
			missed++
			continue
		}

		log.Printf("  %s: %.5f, %.5f", c.id, result.Lat, result.Lng)
		resolved++
	}

	log.Printf("Done. Resolved %d, missed %d.", resolved, missed)
}
