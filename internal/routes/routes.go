package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/zyla999/eco-directory/internal/handlers"
	"github.com/zyla999/eco-directory/internal/middleware"
)

// CORSMiddleware tells the browser that the frontend origin is allowed to
// call this API. The origin comes from FRONTEND_ORIGIN so deployments can
// point it at the real site.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight OPTIONS requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())

	// Uploaded logos are served straight off disk.
	router.Static("/uploads", "./uploads")

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Public Directory Routes ---
		v1.GET("/stores", h.ListStores)
		v1.GET("/stores/suggest", h.SuggestStores)
		v1.GET("/stores/:id", h.GetStore)
		v1.GET("/states", h.GetStateFacets)
		v1.GET("/categories", h.GetCategories)
		v1.GET("/sponsors", h.GetSponsors)

		// --- Public Submission ---
		v1.POST("/submit", h.SubmitStore)

		// --- Admin Routes ---
		admin := v1.Group("/admin")
		admin.POST("/login", h.Login)

		protected := admin.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/admins", h.CreateAdmin)

			// Store management
			protected.GET("/stores", h.ListAllStores)
			protected.POST("/stores", h.CreateStore)
			protected.PUT("/stores/:id", h.UpdateStore)
			protected.PATCH("/stores/:id/status", h.UpdateStoreStatus)
			protected.DELETE("/stores/:id", h.DeleteStore)

			// Category management
			protected.POST("/categories", h.CreateCategory)
			protected.PUT("/categories/:id", h.UpdateCategory)
			protected.DELETE("/categories/:id", h.DeleteCategory)

			// Sponsor management
			protected.GET("/sponsors", h.ListSponsors)
			protected.POST("/sponsors", h.CreateSponsor)
			protected.PUT("/sponsors/:id", h.UpdateSponsor)
			protected.DELETE("/sponsors/:id", h.DeleteSponsor)

			// Bulk import + logo upload
			protected.POST("/import", h.ImportStores)
			protected.POST("/upload", h.UploadLogo)
		}
	}

	return router
}
