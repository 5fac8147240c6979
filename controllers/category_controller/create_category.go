package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// CreateCategory godoc
// @Summary Create a category
// @Description Create a category, then re-fetch the collection so the response
// @Description reflects server state rather than an optimistic merge.
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()
	if _, err := manager.CreateJSON(ctx, req); err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to create category"))
		return
	}

	categories, err := manager.List(ctx)
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Category created but refresh failed"))
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created", categories))
}
