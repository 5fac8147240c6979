package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Multipart form with an optional image part. A category name the
// @Description store does not know yet is created right after the product save;
// @Description the two steps are not transactional and a category failure is
// @Description reported as a warning on an otherwise successful response.
// @Tags Products
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/products [post]
func CreateProduct(c *gin.Context) {
	saveProduct(c, 0)
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags Products
// @Accept mpfd
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/products/{id} [put]
func UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}
	saveProduct(c, uint(id))
}

func saveProduct(c *gin.Context, id uint) {
	var form models.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	image, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read image file"))
		return
	}
	form.Image = image

	ctx := c.Request.Context()

	// The escape-hatch check compares against the currently known
	// categories; a failed fetch means an empty list, same as the front
	// holding no fetched categories.
	known, err := manager.KnownCategories(ctx)
	if err != nil {
		log.Printf("[products] category fetch before save failed: %v", err)
	}

	_, warning, err := manager.Save(ctx, id, &form, known)
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to save product"))
		return
	}

	products, err := manager.List(ctx)
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Product saved but refresh failed"))
		return
	}

	status := http.StatusOK
	message := "Product updated"
	if id == 0 {
		status = http.StatusCreated
		message = "Product created"
	}
	if warning != "" {
		c.JSON(status, models.WarningResponse(c, message, warning, products))
		return
	}
	c.JSON(status, models.SuccessResponse(c, message, products))
}
