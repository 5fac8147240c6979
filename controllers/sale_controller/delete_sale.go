package sale_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// DeleteSale godoc
// @Summary Delete a sale
// @Description Requires confirm=true; the front asks the operator before sending it.
// @Tags Sales
// @Produce json
// @Param id path int true "Sale ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/sales/{id} [delete]
func DeleteSale(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid sale ID"))
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Deletion requires confirmation"))
		return
	}

	ctx := c.Request.Context()
	if err := manager.Delete(ctx, uint(id)); err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to delete sale"))
		return
	}

	sales, err := manager.List(ctx)
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Sale deleted but refresh failed"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sale deleted", sales))
}
