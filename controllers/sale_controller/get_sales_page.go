package sale_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// SalesPage bundles everything the sales screen needs in one load.
type SalesPage struct {
	Sales    []models.Sale    `json:"sales"`
	Users    []models.User    `json:"users"`
	Products []models.Product `json:"products"`
}

// GetSalesPage godoc
// @Summary Load the sales screen
// @Description Fetch sales, users and products concurrently. The three lists
// @Description populate disjoint slots, so ordering between them does not matter;
// @Description all fetches share the request context and die with it.
// @Tags Sales
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/sales/page [get]
func GetSalesPage(c *gin.Context) {
	var page SalesPage

	group, ctx := errgroup.WithContext(c.Request.Context())
	group.Go(func() error {
		sales, err := manager.List(ctx)
		page.Sales = sales
		return err
	})
	group.Go(func() error {
		userList, err := users.List(ctx)
		page.Users = userList
		return err
	})
	group.Go(func() error {
		productList, err := products.List(ctx)
		page.Products = productList
		return err
	})

	if err := group.Wait(); err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to load sales page"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales page loaded", page))
}
