package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/zyla999/eco-directory/internal/directory"
	"github.com/zyla999/eco-directory/internal/models"
)

const dateLayout = "2006-01-02"

func (h *Handlers) fetchSponsors() ([]models.Sponsor, error) {
	rows, err := h.DB.Query(`
		SELECT id, name, description, logo, website, cta,
		       placement, target_categories, target_states,
		       start_date, end_date, is_active, created_at
		FROM sponsors
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sponsors []models.Sponsor
	for rows.Next() {
		var s models.Sponsor
		var placement, targetCats, targetStates []byte
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Description, &s.Logo, &s.Website, &s.CTA,
			&placement, &targetCats, &targetStates,
			&s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt,
		); err != nil {
			return nil, err
		}

		s.Placement = []string{}
		if len(placement) > 0 {
			json.Unmarshal(placement, &s.Placement)
		}
		if len(targetCats) > 0 {
			json.Unmarshal(targetCats, &s.TargetCategories)
		}
		if len(targetStates) > 0 {
			json.Unmarshal(targetStates, &s.TargetStates)
		}

		sponsors = append(sponsors, s)
	}
	return sponsors, rows.Err()
}

// GetSponsors (Public) picks sponsors for a page slot.
// GET /v1/sponsors?slot=main-sponsor&category=refillery&state=ON&limit=2
func (h *Handlers) GetSponsors(c *gin.Context) {
	slot := c.Query("slot")
	if slot == "" {
		slot = models.PlacementHomepageFeatured
	}

	sponsors, err := h.fetchSponsors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	limit := 2
	now := time.Now()

	switch {
	case c.Query("state") != "" && slot == models.PlacementStateBanner:
		matched := []models.Sponsor{}
		if s := directory.SponsorForState(sponsors, c.Query("state"), now); s != nil {
			matched = append(matched, *s)
		}
		c.JSON(http.StatusOK, gin.H{"sponsors": matched})
	case c.Query("category") != "":
		c.JSON(http.StatusOK, gin.H{
			"sponsors": directory.SponsorsForCategory(sponsors, c.Query("category"), nil, now, limit),
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"sponsors": directory.SponsorsForSlot(sponsors, slot, now, limit),
		})
	}
}

// --- Admin Sponsor CRUD ---

type SponsorInput struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	Logo             *string  `json:"logo"`
	Website          *string  `json:"website"`
	CTA              *string  `json:"cta"`
	Placement        []string `json:"placement" binding:"required,min=1"`
	TargetCategories []string `json:"targetCategories"`
	TargetStates     []string `json:"targetStates"`
	StartDate        string   `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate          string   `json:"endDate" binding:"required"`
	IsActive         bool     `json:"isActive"`
}

func (in *SponsorInput) window() (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// ListSponsors (Admin Only) returns every sponsor, live or not.
func (h *Handlers) ListSponsors(c *gin.Context) {
	sponsors, err := h.fetchSponsors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if sponsors == nil {
		sponsors = []models.Sponsor{}
	}
	c.JSON(http.StatusOK, gin.H{"sponsors": sponsors})
}

// CreateSponsor (Admin Only)
func (h *Handlers) CreateSponsor(c *gin.Context) {
	var input SponsorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, end, err := input.window()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be YYYY-MM-DD"})
		return
	}

	id := slug.Make(input.Name)
	placementJSON, _ := json.Marshal(input.Placement)
	targetCatsJSON, _ := json.Marshal(input.TargetCategories)
	targetStatesJSON, _ := json.Marshal(input.TargetStates)

	_, err = h.DB.Exec(`
		INSERT INTO sponsors
		(id, name, description, logo, website, cta,
		 placement, target_categories, target_states,
		 start_date, end_date, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.Name, input.Description, input.Logo, input.Website, input.CTA,
		string(placementJSON), string(targetCatsJSON), string(targetStatesJSON),
		start, end, input.IsActive, time.Now(),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sponsor: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Sponsor created", "id": id})
}

// UpdateSponsor (Admin Only) replaces the whole sponsor row; the admin form
// always submits the full object.
func (h *Handlers) UpdateSponsor(c *gin.Context) {
	id := c.Param("id")

	var input SponsorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, end, err := input.window()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be YYYY-MM-DD"})
		return
	}

	placementJSON, _ := json.Marshal(input.Placement)
	targetCatsJSON, _ := json.Marshal(input.TargetCategories)
	targetStatesJSON, _ := json.Marshal(input.TargetStates)

	result, err := h.DB.Exec(`
		UPDATE sponsors SET
			name = ?, description = ?, logo = ?, website = ?, cta = ?,
			placement = ?, target_categories = ?, target_states = ?,
			start_date = ?, end_date = ?, is_active = ?
		WHERE id = ?`,
		input.Name, input.Description, input.Logo, input.Website, input.CTA,
		string(placementJSON), string(targetCatsJSON), string(targetStatesJSON),
		start, end, input.IsActive, id,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sponsor"})
		return
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sponsor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sponsor updated"})
}

// DeleteSponsor (Admin Only)
func (h *Handlers) DeleteSponsor(c *gin.Context) {
	id := c.Param("id")

	result, err := h.DB.Exec("DELETE FROM sponsors WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sponsor"})
		return
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sponsor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sponsor deleted"})
}
