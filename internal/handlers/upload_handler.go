package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logo uploads go to a local "uploads" folder served as static files.
var allowedLogoExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".svg":  true,
}

// UploadLogo handles POST /v1/admin/upload. It stores the image under a
// uuid filename and returns the public URL to put in the store's logo field.
func (h *Handlers) UploadLogo(c *gin.Context) {
	// 1. Get the file from the request
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedLogoExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type (png, jpg, webp, svg only)"})
		return
	}

	// 2. Create "uploads" directory if it doesn't exist
	uploadPath := "./uploads"
	if _, err := os.Stat(uploadPath); os.IsNotExist(err) {
		os.Mkdir(uploadPath, 0755)
	}

	// 3. Generate a safe unique filename (uuid + extension)
	newFilename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	savePath := filepath.Join(uploadPath, newFilename)

	// 4. Save the file
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	// 5. Return the public URL
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	publicURL := fmt.Sprintf("%s/uploads/%s", baseURL, newFilename)

	c.JSON(http.StatusOK, gin.H{
		"url": publicURL,
	})
}
