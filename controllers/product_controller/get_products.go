package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// GetProducts godoc
// @Summary List products
// @Description Fetch the product collection. The q parameter filters the fetched
// @Description list in memory over name, description and category.
// @Tags Products
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} models.ApiResponse
// @Router /api/products [get]
func GetProducts(c *gin.Context) {
	products, err := manager.List(c.Request.Context())
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to fetch products"))
		return
	}
	if term := c.Query("q"); term != "" {
		products = manager.Search(products, term)
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched", products))
}
