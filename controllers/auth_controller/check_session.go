package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// CheckSession godoc
// @Summary Check the current session
// @Description Verify the cached token against the store API. Fail-closed: any
// @Description verification failure clears the token and reports unauthenticated.
// @Tags Session
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/session [get]
func CheckSession(c *gin.Context) {
	authenticated := gate.Check(c.Request.Context())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session state", models.SessionInfo{Authenticated: authenticated}))
}
