package auth_controller

import "github.com/neonstore-ecommerce/neonstore-admin/session"

var gate *session.Gate

// Init wires the session gate used by every handler in this package.
func Init(g *session.Gate) {
	gate = g
}
