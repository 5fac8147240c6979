package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// GetCategories godoc
// @Summary List categories
// @Description Fetch the category collection from the store API. The q parameter
// @Description filters the fetched list in memory, never on the wire.
// @Tags Categories
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} models.ApiResponse
// @Router /api/categories [get]
func GetCategories(c *gin.Context) {
	categories, err := manager.List(c.Request.Context())
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}
	if term := c.Query("q"); term != "" {
		categories = manager.Search(categories, term)
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched", categories))
}
