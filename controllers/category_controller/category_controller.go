package category_controller

import (
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

var manager *client.Manager[models.Category]

// Init wires the category manager used by every handler in this package.
func Init(m *client.Manager[models.Category]) {
	manager = m
}
