package sale_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// CreateSale godoc
// @Summary Create a sale
// @Description JSON body with line items. Items without a unit price get it
// @Description filled from the product's current price, matching the form's
// @Description auto-population.
// @Tags Sales
// @Accept json
// @Produce json
// @Param sale body models.SaleRequest true "Sale with line items"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/sales [post]
func CreateSale(c *gin.Context) {
	var req models.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()
	fillUnitPrices(c, &req)

	if _, err := manager.CreateJSON(ctx, req); err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to create sale"))
		return
	}

	sales, err := manager.List(ctx)
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Sale created but refresh failed"))
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Sale created", sales))
}

// fillUnitPrices resolves zero unit prices against the current product
// list, the way the sale form pre-fills the price of a just-selected
// product. A failed product fetch leaves the items as submitted.
func fillUnitPrices(c *gin.Context, req *models.SaleRequest) {
	needsFill := false
	for _, item := range req.Items {
		if item.UnitPrice == 0 {
			needsFill = true
			break
		}
	}
	if !needsFill {
		return
	}

	productList, err := products.List(c.Request.Context())
	if err != nil {
		log.Printf("[sales] product fetch for price fill failed: %v", err)
		return
	}
	prices := make(map[uint]float64, len(productList))
	for _, p := range productList {
		prices[p.ID] = p.Price
	}
	for i, item := range req.Items {
		if item.UnitPrice == 0 {
			req.Items[i].UnitPrice = prices[item.ProductID]
		}
	}
}
