package sale_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// GetSales godoc
// @Summary List sales
// @Description Fetch the sale collection. The q parameter filters the fetched
// @Description list in memory over status and id.
// @Tags Sales
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} models.ApiResponse
// @Router /api/sales [get]
func GetSales(c *gin.Context) {
	sales, err := manager.List(c.Request.Context())
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to fetch sales"))
		return
	}
	if term := c.Query("q"); term != "" {
		sales = manager.Search(sales, term)
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales fetched", sales))
}
