package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// Logout godoc
// @Summary Log out of the dashboard
// @Description Clear the cached session token. No store API call is made.
// @Tags Session
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/session/logout [post]
func Logout(c *gin.Context) {
	gate.Logout()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", models.SessionInfo{Authenticated: false}))
}
