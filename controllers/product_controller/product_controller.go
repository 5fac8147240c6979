package product_controller

import (
	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

var manager *client.ProductManager

// Init wires the product manager used by every handler in this package.
func Init(m *client.ProductManager) {
	manager = m
}

// formImage pulls the optional image part off a multipart form.
func formImage(c *gin.Context) (*models.FileUpload, error) {
	header, err := c.FormFile("image")
	if err != nil {
		// Absent file is fine; the image field is optional.
		return nil, nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &models.FileUpload{Filename: header.Filename, Reader: file}, nil
}
