package category_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// UpdateCategory godoc
// @Summary Update a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body models.CategoryRequest true "Category details"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()
	if _, err := manager.UpdateJSON(ctx, uint(id), req); err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to update category"))
		return
	}

	categories, err := manager.List(ctx)
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Category updated but refresh failed"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated", categories))
}
