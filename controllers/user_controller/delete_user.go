package user_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// DeleteUser godoc
// @Summary Delete a user
// @Description Requires confirm=true; the front asks the operator before sending it.
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid user ID"))
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Deletion requires confirmation"))
		return
	}

	ctx := c.Request.Context()
	if err := manager.Delete(ctx, uint(id)); err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to delete user"))
		return
	}

	users, err := manager.List(ctx)
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "User deleted but refresh failed"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "User deleted", users))
}
