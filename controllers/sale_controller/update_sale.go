package sale_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// UpdateSale godoc
// @Summary Update a sale
// @Tags Sales
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param sale body models.SaleRequest true "Sale with line items"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/sales/{id} [put]
func UpdateSale(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid sale ID"))
		return
	}

	var req models.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()
	fillUnitPrices(c, &req)

	if _, err := manager.UpdateJSON(ctx, uint(id), req); err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to update sale"))
		return
	}

	sales, err := manager.List(ctx)
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Sale updated but refresh failed"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sale updated", sales))
}
