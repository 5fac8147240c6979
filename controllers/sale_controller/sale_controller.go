package sale_controller

import (
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

var (
	manager  *client.SaleManager
	users    *client.Manager[models.User]
	products *client.Manager[models.Product]
)

// Init wires the sale manager plus the user and product managers the
// sales screen reads alongside it (buyer names, product prices).
func Init(sales *client.SaleManager, userManager *client.Manager[models.User], productManager *client.Manager[models.Product]) {
	manager = sales
	users = userManager
	products = productManager
}
