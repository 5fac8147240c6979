package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (s *Server) listDownloads(c *gin.Context) {
	var files []DownloadFile
	if err := s.db.Order("id").Find(&files).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	c.JSON(http.StatusOK, files)
}

func (s *Server) downloadFile(c *gin.Context) {
	name := c.Param("name")
	var file DownloadFile
	if err := s.db.Where("stored_name = ?", name).First(&file).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "File not found"})
		return
	}

	if err := s.db.Model(&file).
		Update("download_count", gorm.Expr("download_count + 1")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.OriginalName+`"`)
	c.Data(http.StatusOK, file.MimeType, file.Content)
}
