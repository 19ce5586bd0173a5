package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/zyla999/eco-directory/internal/auth"
	"github.com/zyla999/eco-directory/internal/models"
)

// --- Admin Auth ---

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is POST /v1/admin/login. On success it returns a Bearer token for
// the protected admin routes.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.AdminUser
	err := h.DB.QueryRow(
		"SELECT id, email, password_hash, full_name FROM admin_users WHERE email = ?",
		input.Email,
	).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.FullName)
	if err != nil {
		// Same response for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	password := models.Password{Hash: admin.PasswordHash}
	matches, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}
	if !matches {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(admin.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{"id": admin.ID, "email": admin.Email, "fullName": admin.FullName},
	})
}

type CreateAdminInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
}

// CreateAdmin lets an existing admin add another curator account.
func (h *Handlers) CreateAdmin(c *gin.Context) {
	var input CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	res, err := h.DB.Exec(
		"INSERT INTO admin_users (email, password_hash, full_name, created_at) VALUES (?, ?, ?, ?)",
		input.Email, password.Hash, input.FullName, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin (email may already exist)"})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "Admin created", "id": id})
}

// --- Admin Store CRUD ---

type LocationInput struct {
	Address    *string        `json:"address"`
	City       string         `json:"city" binding:"required"`
	State      string         `json:"state" binding:"required"`
	PostalCode *string        `json:"postalCode"`
	Phone      *string        `json:"phone"`
	Coordinate *models.LatLng `json:"coordinates"`
}

type CreateStoreInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Categories  []string `json:"categories" binding:"required,min=1"`
	Type        string   `json:"type"`

	Logo    *string `json:"logo"`
	Website *string `json:"website"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`

	Address     *string        `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	Country     string         `json:"country" binding:"omitempty,oneof=USA Canada"`
	PostalCode  *string        `json:"postalCode"`
	Coordinates *models.LatLng `json:"coordinates"`

	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	Twitter   *string `json:"twitter"`
	TikTok    *string `json:"tiktok"`
	Pinterest *string `json:"pinterest"`

	OffersWholesale     bool `json:"offersWholesale"`
	OffersLocalDelivery bool `json:"offersLocalDelivery"`
	Featured            bool `json:"featured"`

	Status    string          `json:"status" binding:"omitempty,oneof=active needs-review closed"`
	Locations []LocationInput `json:"locations"`
}

// storeID derives the stable slug id from name + city. Online-only stores
// have no city and use "online" in its place.
func storeID(name, city string) string {
	citySlug := "online"
	if city != "" {
		citySlug = slug.Make(city)
	}
	return slug.Make(name) + "-" + citySlug
}

// CreateStore is POST /v1/admin/stores.
func (h *Handlers) CreateStore(c *gin.Context) {
	var input CreateStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeType := models.ParseStoreType(input.Type)
	if storeType == 0 {
		storeType = models.TypeBrickAndMortar
	}
	status := input.Status
	if status == "" {
		status = models.StatusActive // Admin-created stores go live immediately
	}
	country := input.Country
	if country == "" {
		country = "USA"
	}

	id := storeID(input.Name, input.City)
	categoriesJSON, _ := json.Marshal(input.Categories)

	var lat, lng interface{}
	if input.Coordinates != nil {
		lat, lng = input.Coordinates.Lat, input.Coordinates.Lng
	}

	tx, err := h.DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Transaction failed"})
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO stores
		(id, name, description, categories, type,
		 logo, website, email, phone,
		 address, city, state, country, postal_code, lat, lng,
		 instagram, facebook, twitter, tiktok, pinterest,
		 offers_wholesale, offers_local_delivery, featured,
		 status, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.Name, input.Description, string(categoriesJSON), storeType.String(),
		input.Logo, input.Website, input.Email, input.Phone,
		input.Address, input.City, input.State, country, input.PostalCode, lat, lng,
		input.Instagram, input.Facebook, input.Twitter, input.TikTok, input.Pinterest,
		input.OffersWholesale, input.OffersLocalDelivery, input.Featured,
		status, "admin", time.Now(),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create store (id may already exist): " + err.Error()})
		return
	}

	if err := insertLocations(tx, id, input.Locations); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store created but locations failed: " + err.Error()})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Commit failed"})
		return
	}

	h.flushSnapshot()
	c.JSON(http.StatusCreated, gin.H{"message": "Store created", "id": id})
}

func insertLocations(tx *sql.Tx, storeID string, locations []LocationInput) error {
	for i, loc := range locations {
		var lat, lng interface{}
		if loc.Coordinate != nil {
			lat, lng = loc.Coordinate.Lat, loc.Coordinate.Lng
		}
		_, err := tx.Exec(`
			INSERT INTO store_locations
			(store_id, address, city, state, postal_code, phone, lat, lng, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			storeID, loc.Address, loc.City, loc.State, loc.PostalCode, loc.Phone, lat, lng, i)
		if err != nil {
			return err
		}
	}
	return nil
}

type UpdateStoreInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Categories  *[]string `json:"categories"`
	Type        *string   `json:"type"`

	Logo    *string `json:"logo"`
	Website *string `json:"website"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`

	Address     *string        `json:"address"`
	City        *string        `json:"city"`
	State       *string        `json:"state"`
	Country     *string        `json:"country" binding:"omitempty,oneof=USA Canada"`
	PostalCode  *string        `json:"postalCode"`
	Coordinates *models.LatLng `json:"coordinates"`

	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	Twitter   *string `json:"twitter"`
	TikTok    *string `json:"tiktok"`
	Pinterest *string `json:"pinterest"`

	OffersWholesale     *bool `json:"offersWholesale"`
	OffersLocalDelivery *bool `json:"offersLocalDelivery"`
	Featured            *bool `json:"featured"`

	LastVerifiedAt *time.Time `json:"lastVerifiedAt"`

	// When present, secondary locations are replaced wholesale.
	Locations *[]LocationInput `json:"locations"`
}

// UpdateStore is PUT /v1/admin/stores/:id. Only the submitted fields change;
// the id itself never does.
func (h *Handlers) UpdateStore(c *gin.Context) {
	id := c.Param("id")

	var exists int
	if err := h.DB.QueryRow("SELECT 1 FROM stores WHERE id = ?", id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var input UpdateStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback()

	// --- Dynamically Build UPDATE Query ---
	querySet := ""
	queryArgs := []interface{}{}
	appendSet := func(col string, v interface{}) {
		if querySet != "" {
			querySet += ", "
		}
		querySet += col + " = ?"
		queryArgs = append(queryArgs, v)
	}

	if input.Name != nil {
		appendSet("name", *input.Name)
	}
	if input.Description != nil {
		appendSet("description", *input.Description)
	}
	if input.Categories != nil {
		categoriesJSON, _ := json.Marshal(*input.Categories)
		appendSet("categories", string(categoriesJSON))
	}
	if input.Type != nil {
		appendSet("type", models.ParseStoreType(*input.Type).String())
	}
	if input.Logo != nil {
		appendSet("logo", *input.Logo)
	}
	if input.Website != nil {
		appendSet("website", *input.Website)
	}
	if input.Email != nil {
		appendSet("email", *input.Email)
	}
	if input.Phone != nil {
		appendSet("phone", *input.Phone)
	}
	if input.Address != nil {
		appendSet("address", *input.Address)
	}
	if input.City != nil {
		appendSet("city", *input.City)
	}
	if input.State != nil {
		appendSet("state", *input.State)
	}
	if input.Country != nil {
		appendSet("country", *input.Country)
	}
	if input.PostalCode != nil {
		appendSet("postal_code", *input.PostalCode)
	}
	if input.Coordinates != nil {
		appendSet("lat", input.Coordinates.Lat)
		appendSet("lng", input.Coordinates.Lng)
	}
	if input.Instagram != nil {
		appendSet("instagram", *input.Instagram)
	}
	if input.Facebook != nil {
		appendSet("facebook", *input.Facebook)
	}
	if input.Twitter != nil {
		appendSet("twitter", *input.Twitter)
	}
	if input.TikTok != nil {
		appendSet("tiktok", *input.TikTok)
	}
	if input.Pinterest != nil {
		appendSet("pinterest", *input.Pinterest)
	}
	if input.OffersWholesale != nil {
		appendSet("offers_wholesale", *input.OffersWholesale)
	}
	if input.OffersLocalDelivery != nil {
		appendSet("offers_local_delivery", *input.OffersLocalDelivery)
	}
	if input.Featured != nil {
		appendSet("featured", *input.Featured)
	}
	if input.LastVerifiedAt != nil {
		appendSet("last_verified_at", *input.LastVerifiedAt)
	}

	if querySet != "" {
		queryArgs = append(queryArgs, id)
		if _, err := tx.Exec("UPDATE stores SET "+querySet+" WHERE id = ?", queryArgs...); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store"})
			return
		}
	}

	// Replace secondary locations: delete all, then re-insert.
	if input.Locations != nil {
		if _, err := tx.Exec("DELETE FROM store_locations WHERE store_id = ?", id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear old locations"})
			return
		}
		if err := insertLocations(tx, id, *input.Locations); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save locations"})
			return
		}
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	h.flushSnapshot()
	c.JSON(http.StatusOK, gin.H{"message": "Store updated successfully"})
}

type UpdateStoreStatusInput struct {
	Status string `json:"status" binding:"required,oneof=active needs-review closed"`
}

// UpdateStoreStatus is PATCH /v1/admin/stores/:id/status, the quick action
// used from the review queue.
func (h *Handlers) UpdateStoreStatus(c *gin.Context) {
	id := c.Param("id")

	var input UpdateStoreStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.DB.Exec("UPDATE stores SET status = ? WHERE id = ?", input.Status, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	h.flushSnapshot()
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// DeleteStore is DELETE /v1/admin/stores/:id. Hard delete; secondary
// locations go first (foreign key).
func (h *Handlers) DeleteStore(c *gin.Context) {
	id := c.Param("id")

	tx, err := h.DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM store_locations WHERE store_id = ?", id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete store locations"})
		return
	}

	result, err := tx.Exec("DELETE FROM stores WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete store"})
		return
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	h.flushSnapshot()
	c.JSON(http.StatusOK, gin.H{"message": "Store deleted successfully"})
}

// ListAllStores is GET /v1/admin/stores: every status, for the back office
// table. Optional ?status= narrows it (e.g. the needs-review queue).
func (h *Handlers) ListAllStores(c *gin.Context) {
	query := "SELECT" + storeColumns + " FROM stores"
	args := []interface{}{}

	if statusFilter := c.Query("status"); statusFilter != "" {
		query += " WHERE status = ?"
		args = append(args, statusFilter)
	}
	query += " ORDER BY created_at DESC"

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	stores := []models.Store{}
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan store row"})
			return
		}
		stores = append(stores, s)
	}

	c.JSON(http.StatusOK, gin.H{"stores": stores, "total": len(stores)})
}
