package user_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// UpdateUser godoc
// @Summary Update a user
// @Description Multipart form with an optional image part. A blank password
// @Description leaves the stored password untouched.
// @Tags Users
// @Accept mpfd
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/users/{id} [put]
func UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	var form models.UserForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	image, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read image file"))
		return
	}
	form.Image = image

	ctx := c.Request.Context()
	if _, err := manager.UpdateMultipart(ctx, uint(id), form.Fields(), form.Image); err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to update user"))
		return
	}

	users, err := manager.List(ctx)
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "User updated but refresh failed"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "User updated", users))
}
