package models

// Category defines the struct for the 'categories' table.
// A small, mostly-static reference set; a store's categories values are
// expected (but not enforced) to be drawn from these ids.
type Category struct {
	ID          string `json:"id" db:"id"` // Stable slug key, e.g. "refillery"
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Icon        string `json:"icon" db:"icon"` // Display hint for the frontend
}
