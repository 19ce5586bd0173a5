package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/zyla999/eco-directory/internal/directory"
	"github.com/zyla999/eco-directory/internal/models"
)

func (h *Handlers) fetchCategories() ([]models.Category, error) {
	rows, err := h.DB.Query("SELECT id, name, description, icon FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.Icon); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// GetCategories (Public) returns the full reference list with active-store
// counts, zero counts included. GET /v1/categories
func (h *Handlers) GetCategories(c *gin.Context) {
	categories, err := h.fetchCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	stores, err := h.fetchActiveStores()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": directory.CategoryFacets(stores, categories)})
}

// --- Admin Category CRUD ---

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CreateCategory (Admin Only)
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := slug.Make(input.Name)

	_, err := h.DB.Exec(
		"INSERT INTO categories (id, name, description, icon) VALUES (?, ?, ?, ?)",
		id, input.Name, input.Description, input.Icon)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category: " + err.Error()})
		return
	}

	newCat := models.Category{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": newCat})
}

type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// UpdateCategory (Admin Only). The id never changes; store records reference
// it by value and there is no foreign key to clean up after.
func (h *Handlers) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var input UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

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
	if input.Icon != nil {
		appendSet("icon", *input.Icon)
	}

	if querySet == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	queryArgs = append(queryArgs, id)
	result, err := h.DB.Exec("UPDATE categories SET "+querySet+" WHERE id = ?", queryArgs...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated"})
}

// DeleteCategory (Admin Only). Stores keep their now-dangling category id;
// the facet aggregation simply stops listing it.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	_, err := h.DB.Exec("DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
