package category_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Requires confirm=true; the front asks the operator before sending it.
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Deletion requires confirmation"))
		return
	}

	ctx := c.Request.Context()
	if err := manager.Delete(ctx, uint(id)); err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	categories, err := manager.List(ctx)
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Category deleted but refresh failed"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted", categories))
}
