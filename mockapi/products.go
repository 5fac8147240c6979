package mockapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) listProducts(c *gin.Context) {
	var products []Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) createProduct(c *gin.Context) {
	product, ok := bindProductForm(c)
	if !ok {
		return
	}
	if err := s.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var existing Product
	if err := s.db.First(&existing, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
		return
	}

	product, ok := bindProductForm(c)
	if !ok {
		return
	}
	product.ID = existing.ID
	if product.ImageURL == nil {
		product.ImageURL = existing.ImageURL
	}
	if err := s.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result := s.db.Delete(&Product{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func bindProductForm(c *gin.Context) (Product, bool) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid price"})
		return Product{}, false
	}
	stock, err := strconv.Atoi(c.PostForm("stock"))
	if err != nil || stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid stock"})
		return Product{}, false
	}
	isActive, _ := strconv.ParseBool(c.PostForm("is_active"))

	product := Product{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Stock:       stock,
		Category:    c.PostForm("category"),
		IsActive:    isActive,
		ImageURL:    formImageURL(c),
	}
	if product.Name == "" || product.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing required fields"})
		return Product{}, false
	}
	return product, true
}
