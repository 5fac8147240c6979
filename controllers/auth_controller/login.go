package auth_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
	"github.com/neonstore-ecommerce/neonstore-admin/session"
)

// Login godoc
// @Summary Log in to the dashboard
// @Description Exchange admin credentials for a session token cached by the dashboard
// @Tags Session
// @Accept json
// @Produce json
// @Param credentials body models.Credentials true "Admin credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/session/login [post]
func Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if err := gate.Login(c.Request.Context(), creds.Email, creds.Password); err != nil {
		var authErr *session.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, authErr.Message))
			return
		}
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication failed"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", models.SessionInfo{Authenticated: true}))
}
