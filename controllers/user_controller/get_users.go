package user_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// GetUsers godoc
// @Summary List users
// @Description Fetch the user collection. The q parameter filters the fetched
// @Description list in memory over name and email.
// @Tags Users
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} models.ApiResponse
// @Router /api/users [get]
func GetUsers(c *gin.Context) {
	users, err := manager.List(c.Request.Context())
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to fetch users"))
		return
	}
	if term := c.Query("q"); term != "" {
		users = manager.Search(users, term)
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Users fetched", users))
}
