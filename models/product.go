package models

import "strconv"

// Product as returned by the store API. Category is linked by name,
// not by id; the store contract gives no referential guarantee.
type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	IsActive    bool    `json:"is_active"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// ProductForm is the multipart form for product create and update.
type ProductForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Price       float64 `form:"price" binding:"required,min=0"`
	Stock       int     `form:"stock" binding:"min=0"`
	Category    string  `form:"category" binding:"required"`
	IsActive    bool    `form:"is_active"`
	Image       *FileUpload
}

// Fields returns the multipart field map sent to the store API.
func (f *ProductForm) Fields() map[string]string {
	return map[string]string{
		"name":        f.Name,
		"description": f.Description,
		"price":       strconv.FormatFloat(f.Price, 'f', -1, 64),
		"stock":       strconv.Itoa(f.Stock),
		"category":    f.Category,
		"is_active":   strconv.FormatBool(f.IsActive),
	}
}
