package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listCategories(c *gin.Context) {
	var categories []Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	// Product counts are derived per read; products link by name.
	for i := range categories {
		var count int64
		s.db.Model(&Product{}).Where("category = ?", categories[i].Name).Count(&count)
		categories[i].ProductCount = int(count)
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) createCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request"})
		return
	}
	category := Category{Name: req.Name, Description: req.Description, IsActive: req.IsActive}
	if err := s.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (s *Server) updateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var category Category
	if err := s.db.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Category not found"})
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request"})
		return
	}
	category.Name = req.Name
	category.Description = req.Description
	category.IsActive = req.IsActive
	if err := s.db.Save(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not update category"})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result := s.db.Delete(&Category{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
