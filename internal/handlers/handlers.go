package handlers

import (
	"database/sql"

	"github.com/patrickmn/go-cache"
	"github.com/zyla999/eco-directory/internal/geocode"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB       *sql.DB         // Directory database connection pool
	Cache    *cache.Cache    // Short-TTL memoization of the active-store snapshot
	Geocoder *geocode.Client // Used by the CSV import path only
}

// activeStoresCacheKey is where the active snapshot lives in the cache.
// Admin writes flush it so the public side never serves stale CRUD results
// for longer than one request.
const activeStoresCacheKey = "stores:active"

func (h *Handlers) flushSnapshot() {
	h.Cache.Delete(activeStoresCacheKey)
}
