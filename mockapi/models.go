package mockapi

import (
	"time"

	"gorm.io/datatypes"
)

// Store-side records. These mirror the contract the dashboard consumes;
// ids are store-originated auto increments.

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"not null"`
	LastName     string    `json:"last_name" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role" gorm:"not null;check:role IN ('Client', 'Administrator')"`
	IsActive     bool      `json:"is_active"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null;uniqueIndex"`
	Description string `json:"description" gorm:"not null"`
	IsActive    bool   `json:"is_active"`
	// Derived at read time, never stored.
	ProductCount int `json:"product_count" gorm:"-"`
}

type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null;index"`
	Description string  `json:"description" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null;check:price >= 0"`
	Stock       int     `json:"stock" gorm:"not null;default:0"`
	// Category linkage is by name, as the contract dictates.
	Category string  `json:"category" gorm:"not null;index"`
	IsActive bool    `json:"is_active"`
	ImageURL *string `json:"image_url,omitempty"`
}

type Sale struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	TotalAmount float64        `json:"total_amount" gorm:"not null"`
	Status      string         `json:"status" gorm:"not null;check:status IN ('pending', 'completed', 'cancelled')"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	Items       datatypes.JSON `json:"-" gorm:"not null;default:'[]'"`
}

// SaleItem is the denormalized line item stored inside Sale.Items.
type SaleItem struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type DownloadFile struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	StoredName    string    `json:"stored_name" gorm:"not null;uniqueIndex"`
	OriginalName  string    `json:"original_name" gorm:"not null"`
	FileSize      int64     `json:"file_size" gorm:"not null"`
	MimeType      string    `json:"mime_type" gorm:"not null"`
	DownloadCount int       `json:"download_count" gorm:"not null;default:0"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	Content       []byte    `json:"-" gorm:"not null"`
}

// saleRequest is the JSON body for sale create and update.
type saleRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Status string `json:"status" binding:"required,oneof=pending completed cancelled"`
	Items  []struct {
		ProductID uint    `json:"product_id" binding:"required"`
		Quantity  int     `json:"quantity" binding:"required,min=1"`
		UnitPrice float64 `json:"unit_price" binding:"min=0"`
	} `json:"items" binding:"required,min=1,dive"`
}

// categoryRequest is the JSON body for category create and update.
type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	IsActive    bool   `json:"is_active"`
}
