package product_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Requires confirm=true; the front asks the operator before sending it.
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Deletion requires confirmation"))
		return
	}

	ctx := c.Request.Context()
	if err := manager.Delete(ctx, uint(id)); err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	products, err := manager.List(ctx)
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Product deleted but refresh failed"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted", products))
}
