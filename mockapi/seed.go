package mockapi

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed loads an administrator plus a small sample catalog so the
// dashboard has something to show on first run.
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := hashPassword(adminPassword)
	if err != nil {
		return err
	}
	admin := User{
		FirstName:    "Ada",
		LastName:     "Reyes",
		Email:        adminEmail,
		PasswordHash: hash,
		Country:      "Chile",
		City:         "Santiago",
		Address:      "Av. Central 1200",
		Phone:        "+56 9 1234 5678",
		Role:         "Administrator",
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	clientHash, err := hashPassword("client-password")
	if err != nil {
		return err
	}
	buyer := User{
		FirstName:    "Bruno",
		LastName:     "Silva",
		Email:        "bruno@example.com",
		PasswordHash: clientHash,
		Country:      "Chile",
		City:         "Valparaíso",
		Address:      "Calle Larga 45",
		Phone:        "+56 9 8765 4321",
		Role:         "Client",
		IsActive:     true,
	}
	if err := db.Create(&buyer).Error; err != nil {
		return err
	}

	categories := []Category{
		{Name: "Keyboards", Description: "Mechanical and membrane keyboards", IsActive: true},
		{Name: "Displays", Description: "Monitors and panels", IsActive: true},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	products := []Product{
		{Name: "Neon K87", Description: "87-key mechanical keyboard", Price: 89.90, Stock: 25, Category: "Keyboards", IsActive: true},
		{Name: "Glow 27", Description: "27 inch 144Hz monitor", Price: 329.00, Stock: 10, Category: "Displays", IsActive: true},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	items := []SaleItem{
		{ID: 1, ProductID: products[0].ID, ProductName: products[0].Name, Quantity: 2, UnitPrice: 89.90, TotalPrice: 179.80},
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	sale := Sale{
		UserID:      buyer.ID,
		TotalAmount: 179.80,
		Status:      "completed",
		Items:       datatypes.JSON(payload),
	}
	if err := db.Create(&sale).Error; err != nil {
		return err
	}

	manual := []byte("NeonStore dashboard manual.\n")
	files := []DownloadFile{
		{
			StoredName:   "manual-v2.txt",
			OriginalName: "dashboard-manual.txt",
			FileSize:     int64(len(manual)),
			MimeType:     "text/plain",
			IsActive:     true,
			Content:      manual,
		},
		{
			StoredName:   "pricelist-2025.csv",
			OriginalName: "pricelist.csv",
			FileSize:     42,
			MimeType:     "text/csv",
			IsActive:     false,
			Content:      []byte("sku,price\nneon-k87,89.90\nglow-27,329.00\n"),
		},
	}
	if err := db.Create(&files).Error; err != nil {
		return err
	}

	fmt.Println("✅ Seeded mock store with admin", adminEmail)
	return nil
}
