package download_controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// DownloadFile godoc
// @Summary Download one file
// @Description Stream the file through the authenticated store endpoint as an
// @Description attachment. Inactive files are refused before any request is
// @Description issued. The front re-lists afterwards to show the new counter.
// @Tags Downloads
// @Produce octet-stream
// @Param id path int true "File ID"
// @Success 200 "File content"
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/downloads/{id}/file [get]
func DownloadFile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid file ID"))
		return
	}

	ctx := c.Request.Context()
	files, err := manager.List(ctx)
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to fetch downloads"))
		return
	}

	var file *models.DownloadFile
	for i := range files {
		if files[i].ID == uint(id) {
			file = &files[i]
			break
		}
	}
	if file == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "File not found"))
		return
	}

	data, contentType, err := manager.Download(ctx, *file)
	if errors.Is(err, client.ErrFileInactive) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "File is not active"))
		return
	}
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to download file"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.OriginalName))
	c.Data(http.StatusOK, contentType, data)
}
