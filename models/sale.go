package models

import "time"

// Sale statuses accepted by the store API.
const (
	SaleStatusPending   = "pending"
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

// Sale as returned by the store API. Items is only populated on the
// detail endpoint; the list endpoint returns header rows.
type Sale struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	TotalAmount float64    `json:"total_amount"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	Items       []SaleItem `json:"items,omitempty"`
}

// SaleItem is a denormalized line item: the product name is captured
// at sale time and does not follow later product renames.
type SaleItem struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// SaleRequest is the JSON body for sale create and update.
type SaleRequest struct {
	UserID uint              `json:"user_id" binding:"required"`
	Status string            `json:"status" binding:"required,oneof=pending completed cancelled"`
	Items  []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleItemRequest is one line item on the sale form.
type SaleItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	// Zero means "fill from the product's current price".
	UnitPrice float64 `json:"unit_price" binding:"min=0"`
}
