package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zyla999/eco-directory/internal/email"
	"github.com/zyla999/eco-directory/internal/models"
)

type SubmitStoreInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Categories  []string `json:"categories" binding:"required,min=1"`
	Type        string   `json:"type"`

	Website *string `json:"website"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`

	Address    *string `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Country    string  `json:"country" binding:"omitempty,oneof=USA Canada"`
	PostalCode *string `json:"postalCode"`

	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`

	OffersWholesale     bool `json:"offersWholesale"`
	OffersLocalDelivery bool `json:"offersLocalDelivery"`
}

// SubmitStore is the public POST /v1/submit. Submissions land in the
// needs-review queue and are invisible until an admin approves them.
func (h *Handlers) SubmitStore(c *gin.Context) {
	var input SubmitStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeType := models.ParseStoreType(input.Type)
	if storeType == 0 {
		storeType = models.TypeBrickAndMortar
	}
	country := input.Country
	if country == "" {
		country = "USA"
	}

	id := storeID(input.Name, input.City)
	categoriesJSON, _ := json.Marshal(input.Categories)

	_, err := h.DB.Exec(`
		INSERT INTO stores
		(id, name, description, categories, type,
		 website, email, phone,
		 address, city, state, country, postal_code,
		 instagram, facebook,
		 offers_wholesale, offers_local_delivery,
		 status, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.Name, input.Description, string(categoriesJSON), storeType.String(),
		input.Website, input.Email, input.Phone,
		input.Address, input.City, input.State, country, input.PostalCode,
		input.Instagram, input.Facebook,
		input.OffersWholesale, input.OffersLocalDelivery,
		models.StatusNeedsReview, "public-submission", time.Now(),
	)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A store with this name and city already exists"})
		return
	}

	// Notify the curators without holding up the response.
	go email.SendSubmissionNotification(
		input.Name, storeType.String(), input.City, input.State, country, input.Categories)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thanks! Your submission is in the review queue.",
		"id":      id,
	})
}
