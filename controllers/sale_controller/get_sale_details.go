package sale_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// GetSaleDetails godoc
// @Summary Get one sale with its line items
// @Description Read-only detail view for the sales screen dialog.
// @Tags Sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/sales/{id} [get]
func GetSaleDetails(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid sale ID"))
		return
	}

	sale, err := manager.GetDetails(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to fetch sale details"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sale details fetched", sale))
}
