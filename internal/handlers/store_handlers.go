package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/zyla999/eco-directory/internal/directory"
	"github.com/zyla999/eco-directory/internal/models"
)

// storeColumns is the SELECT list shared by every store query; keep it in
// sync with scanStore below.
const storeColumns = `
	id, name, description, categories, type,
	logo, website, email, phone,
	address, city, state, country, postal_code, lat, lng,
	instagram, facebook, twitter, tiktok, pinterest,
	offers_wholesale, offers_local_delivery, featured,
	status, source, created_at, last_verified_at`

// scanStore reads one row into a typed Store, converting the loose column
// shapes (JSON categories, nullable lat/lng pair, '+'-joined type) at the
// boundary so everything past here works with real types.
func scanStore(rows interface{ Scan(...interface{}) error }) (models.Store, error) {
	var s models.Store
	var dbCategories []byte
	var typeStr string
	var lat, lng sql.NullFloat64

	err := rows.Scan(
		&s.ID, &s.Name, &s.Description, &dbCategories, &typeStr,
		&s.Logo, &s.Website, &s.Email, &s.Phone,
		&s.Address, &s.City, &s.State, &s.Country, &s.PostalCode, &lat, &lng,
		&s.Instagram, &s.Facebook, &s.Twitter, &s.TikTok, &s.Pinterest,
		&s.OffersWholesale, &s.OffersLocalDelivery, &s.Featured,
		&s.Status, &s.Source, &s.CreatedAt, &s.LastVerifiedAt,
	)
	if err != nil {
		return s, err
	}

	s.Categories = []string{}
	if len(dbCategories) > 0 {
		json.Unmarshal(dbCategories, &s.Categories)
	}
	s.Type = models.ParseStoreType(typeStr)

	// Coordinates are all-or-nothing: a half-set pair stays absent.
	if lat.Valid && lng.Valid {
		s.Coordinates = &models.LatLng{Lat: lat.Float64, Lng: lng.Float64}
	}

	return s, nil
}

// fetchActiveStores loads the active snapshot for the public query path.
// The result is memoized for a minute; the core filtering stays pure over
// whatever snapshot it is handed.
func (h *Handlers) fetchActiveStores() ([]models.Store, error) {
	if cached, found := h.Cache.Get(activeStoresCacheKey); found {
		return cached.([]models.Store), nil
	}

	rows, err := h.DB.Query(
		"SELECT" + storeColumns + " FROM stores WHERE status = 'active' ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []models.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	h.Cache.Set(activeStoresCacheKey, stores, cache.DefaultExpiration)
	return stores, nil
}

// buildFilterSpec translates query parameters into a FilterSpec. Malformed
// values degrade to "filter not applied" instead of failing the request.
func buildFilterSpec(c *gin.Context) directory.FilterSpec {
	spec := directory.FilterSpec{
		TextQuery: c.Query("q"),
		Country:   c.Query("country"),
		Sort:      c.Query("sort"),
	}

	if raw := c.Query("categories"); raw != "" {
		spec.Categories = strings.Split(raw, ",")
	}
	if raw := c.Query("states"); raw != "" {
		spec.States = strings.Split(raw, ",")
	}
	if raw := c.Query("types"); raw != "" {
		spec.StoreTypes = models.ParseStoreType(strings.ReplaceAll(raw, ",", "+"))
	}

	spec.WholesaleOnly = c.Query("wholesale") == "true"
	spec.DeliveryOnly = c.Query("delivery") == "true"

	// "near=lat,lng"; a malformed point falls back to the default sort.
	if raw := c.Query("near"); raw != "" {
		parts := strings.Split(raw, ",")
		if len(parts) == 2 {
			lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
			lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			if errLat == nil && errLng == nil {
				spec.NearPoint = &models.LatLng{Lat: lat, Lng: lng}
			}
		}
	}

	return spec
}

// ListStores is the public directory query: GET /v1/stores
func (h *Handlers) ListStores(c *gin.Context) {
	stores, err := h.fetchActiveStores()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	result := directory.Filter(stores, buildFilterSpec(c))

	c.JSON(http.StatusOK, gin.H{
		"stores": result,
		"total":  len(result),
	})
}

// GetStore returns one active store with its secondary locations.
// GET /v1/stores/:id
func (h *Handlers) GetStore(c *gin.Context) {
	id := c.Param("id")

	row := h.DB.QueryRow(
		"SELECT"+storeColumns+" FROM stores WHERE id = ? AND status = 'active'", id)

	store, err := scanStore(row)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	locations, err := h.fetchStoreLocations(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load store locations"})
		return
	}
	store.Locations = locations

	c.JSON(http.StatusOK, gin.H{"store": store})
}

func (h *Handlers) fetchStoreLocations(storeID string) ([]models.StoreLocation, error) {
	rows, err := h.DB.Query(`
		SELECT id, store_id, address, city, state, postal_code, phone, lat, lng, position
		FROM store_locations
		WHERE store_id = ?
		ORDER BY position ASC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []models.StoreLocation{}
	for rows.Next() {
		var loc models.StoreLocation
		var lat, lng sql.NullFloat64
		if err := rows.Scan(
			&loc.ID, &loc.StoreID, &loc.Address, &loc.City, &loc.State,
			&loc.PostalCode, &loc.Phone, &lat, &lng, &loc.Position,
		); err != nil {
			return nil, err
		}
		if lat.Valid && lng.Valid {
			loc.Coordinate = &models.LatLng{Lat: lat.Float64, Lng: lng.Float64}
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// SuggestStores powers the search-bar typeahead: top 5 stores by name,
// 3 distinct cities, 3 categories. GET /v1/stores/suggest?q=
func (h *Handlers) SuggestStores(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if len(q) < 2 {
		c.JSON(http.StatusOK, gin.H{"stores": []gin.H{}, "cities": []string{}, "categories": []gin.H{}})
		return
	}
	pattern := "%" + q + "%"

	storeHits := []gin.H{}
	rows, err := h.DB.Query(`
		SELECT id, name, city, state FROM stores
		WHERE status = 'active' AND name LIKE ?
		ORDER BY name ASC LIMIT 5`, pattern)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	for rows.Next() {
		var id, name, city, state string
		if err := rows.Scan(&id, &name, &city, &state); err != nil {
			continue
		}
		storeHits = append(storeHits, gin.H{"id": id, "name": name, "city": city, "state": state})
	}
	rows.Close()

	cities := []string{}
	cityRows, err := h.DB.Query(`
		SELECT DISTINCT city FROM stores
		WHERE status = 'active' AND city LIKE ? AND city != ''
		ORDER BY city ASC LIMIT 3`, pattern)
	if err == nil {
		for cityRows.Next() {
			var city string
			if err := cityRows.Scan(&city); err == nil {
				cities = append(cities, city)
			}
		}
		cityRows.Close()
	}

	categoryHits := []gin.H{}
	catRows, err := h.DB.Query(
		"SELECT id, name FROM categories WHERE name LIKE ? ORDER BY name ASC LIMIT 3", pattern)
	if err == nil {
		for catRows.Next() {
			var id, name string
			if err := catRows.Scan(&id, &name); err == nil {
				categoryHits = append(categoryHits, gin.H{"id": id, "name": name})
			}
		}
		catRows.Close()
	}

	c.JSON(http.StatusOK, gin.H{
		"stores":     storeHits,
		"cities":     cities,
		"categories": categoryHits,
	})
}

// GetStateFacets returns the state navigation sidebar data. GET /v1/states
func (h *Handlers) GetStateFacets(c *gin.Context) {
	stores, err := h.fetchActiveStores()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"states": directory.StateFacets(stores)})
}
