package user_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// CreateUser godoc
// @Summary Create a user
// @Description Multipart form with an optional image part. A password is
// @Description required on create.
// @Tags Users
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/users [post]
func CreateUser(c *gin.Context) {
	var form models.UserForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if form.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Password is required"))
		return
	}
	image, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read image file"))
		return
	}
	form.Image = image

	ctx := c.Request.Context()
	if _, err := manager.CreateMultipart(ctx, form.Fields(), form.Image); err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to create user"))
		return
	}

	users, err := manager.List(ctx)
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "User created but refresh failed"))
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "User created", users))
}
