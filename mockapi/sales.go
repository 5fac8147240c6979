package mockapi

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// saleResponse is a sale with its items unpacked from the JSON column.
type saleResponse struct {
	Sale
	Items []SaleItem `json:"items"`
}

func (s *Server) listSales(c *gin.Context) {
	var sales []Sale
	if err := s.db.Order("id").Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	// The list endpoint returns header rows without items.
	c.JSON(http.StatusOK, sales)
}

func (s *Server) getSale(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var sale Sale
	if err := s.db.First(&sale, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Sale not found"})
		return
	}
	var items []SaleItem
	if err := json.Unmarshal(sale.Items, &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Corrupt sale items"})
		return
	}
	c.JSON(http.StatusOK, saleResponse{Sale: sale, Items: items})
}

func (s *Server) createSale(c *gin.Context) {
	sale, ok := s.buildSale(c)
	if !ok {
		return
	}
	if err := s.db.Create(&sale).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not create sale"})
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (s *Server) updateSale(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var existing Sale
	if err := s.db.First(&existing, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Sale not found"})
		return
	}
	sale, ok := s.buildSale(c)
	if !ok {
		return
	}
	sale.ID = existing.ID
	sale.CreatedAt = existing.CreatedAt
	if err := s.db.Save(&sale).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not update sale"})
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (s *Server) deleteSale(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result := s.db.Delete(&Sale{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Sale not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// buildSale validates references, denormalizes product names, computes
// line totals and the sale total.
func (s *Server) buildSale(c *gin.Context) (Sale, bool) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request"})
		return Sale{}, false
	}

	var buyerCount int64
	s.db.Model(&User{}).Where("id = ?", req.UserID).Count(&buyerCount)
	if buyerCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "User not found"})
		return Sale{}, false
	}

	items := make([]SaleItem, len(req.Items))
	var total float64
	for i, item := range req.Items {
		var product Product
		if err := s.db.First(&product, item.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Product not found"})
			return Sale{}, false
		}
		unitPrice := item.UnitPrice
		if unitPrice == 0 {
			unitPrice = product.Price
		}
		lineTotal := float64(item.Quantity) * unitPrice
		items[i] = SaleItem{
			ID:          uint(i + 1),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  lineTotal,
		}
		total += lineTotal
	}

	payload, err := json.Marshal(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not encode items"})
		return Sale{}, false
	}
	return Sale{
		UserID:      req.UserID,
		TotalAmount: total,
		Status:      req.Status,
		Items:       datatypes.JSON(payload),
	}, true
}
