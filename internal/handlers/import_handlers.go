package handlers

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zyla999/eco-directory/internal/models"
)

// ImportRowResult reports what happened to one CSV row.
type ImportRowResult struct {
	Row      int    `json:"row"`
	ID       string `json:"id,omitempty"`
	Status   string `json:"status"` // imported | skipped | failed
	Geocoded bool   `json:"geocoded"`
	Error    string `json:"error,omitempty"`
}

// ImportStores is POST /v1/admin/import. It accepts a CSV upload (multipart
// field "file"), creates one active store per row and geocodes rows that
// carry a street address. Rows that collide with an existing id are skipped,
// not overwritten; the per-row report lets the admin sort it out.
//
// Geocoding runs inline at Nominatim's rate limit, so large files take a
// while. That is acceptable for a curation tool.
func (h *Handlers) ImportStores(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing CSV upload (field 'file')"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open upload"})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV is empty or unreadable"})
		return
	}

	// Map header names to column indexes so column order doesn't matter.
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	if _, ok := col["name"]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV must have a 'name' column"})
		return
	}

	results := []ImportRowResult{}
	imported := 0

	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			results = append(results, ImportRowResult{Row: rowNum, Status: "failed", Error: "unparseable row"})
			continue
		}

		name := field(record, "name")
		if name == "" {
			results = append(results, ImportRowResult{Row: rowNum, Status: "skipped", Error: "missing name"})
			continue
		}

		city := field(record, "city")
		state := field(record, "state")
		country := field(record, "country")
		if country == "" {
			country = "USA"
		}
		address := field(record, "address")

		storeType := models.ParseStoreType(field(record, "type"))
		if storeType == 0 {
			storeType = models.TypeBrickAndMortar
		}

		categories := []string{}
		for _, cat := range strings.Split(field(record, "categories"), ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				categories = append(categories, cat)
			}
		}
		categoriesJSON, _ := json.Marshal(categories)

		id := storeID(name, city)

		// Geocode physical rows before inserting so coordinates land in
		// the same write.
		var lat, lng interface{}
		geocoded := false
		if storeType.Has(models.TypeBrickAndMortar|models.TypeMobile) && (address != "" || city != "") {
			result, gerr := h.Geocoder.Geocode(c.Request.Context(), address, city, state, country)
			if gerr != nil {
				log.Printf("import: geocode error for %q: %v", id, gerr)
			} else if result != nil {
				lat, lng = result.Lat, result.Lng
				geocoded = true
			}
		}

		_, err = h.DB.Exec(`
			INSERT INTO stores
			(id, name, description, categories, type,
			 website, email, phone,
			 address, city, state, country, postal_code, lat, lng,
			 offers_wholesale, offers_local_delivery,
			 status, source, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, name, field(record, "description"), string(categoriesJSON), storeType.String(),
			nullable(field(record, "website")), nullable(field(record, "email")), nullable(field(record, "phone")),
			nullable(address), city, state, country, nullable(field(record, "postal_code")), lat, lng,
			boolField(field(record, "offers_wholesale")), boolField(field(record, "offers_local_delivery")),
			models.StatusActive, "import", time.Now(),
		)
		if err != nil {
			results = append(results, ImportRowResult{
				Row: rowNum, ID: id, Status: "skipped", Geocoded: geocoded,
				Error: "already exists or insert failed",
			})
			continue
		}

		imported++
		results = append(results, ImportRowResult{Row: rowNum, ID: id, Status: "imported", Geocoded: geocoded})
	}

	if imported > 0 {
		h.flushSnapshot()
	}

	c.JSON(http.StatusOK, gin.H{
		"imported": imported,
		"total":    len(results),
		"results":  results,
	})
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolField(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1", "y":
		return true
	}
	return false
}
