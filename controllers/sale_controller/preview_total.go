package sale_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// PreviewTotal godoc
// @Summary Compute the form-side preview total
// @Description Sum of quantity times unit price over the submitted items.
// @Description Operator feedback only; the stored total comes from the store API.
// @Tags Sales
// @Accept json
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/sales/preview [post]
func PreviewTotal(c *gin.Context) {
	var payload struct {
		Items []models.SaleItemRequest `json:"items" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	total := client.PreviewTotal(payload.Items)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Preview total computed", gin.H{"total": total}))
}
