package models

// Category is a product category as returned by the store API.
// ProductCount is derived server-side and read-only here.
type Category struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsActive     bool   `json:"is_active"`
	ProductCount int    `json:"product_count"`
}

// CategoryRequest is the JSON body for category create and update.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required" example:"Keyboards"`
	Description string `json:"description" binding:"required"`
	IsActive    bool   `json:"is_active"`
}
