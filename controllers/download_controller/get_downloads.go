package download_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
	"github.com/neonstore-ecommerce/neonstore-admin/utils"
)

// downloadRow is a file record plus the size label the table shows.
type downloadRow struct {
	models.DownloadFile
	SizeLabel string `json:"size_label"`
}

// GetDownloads godoc
// @Summary List downloadable files
// @Description Read-only file list with human-readable sizes. The q parameter
// @Description filters the fetched list in memory over name and MIME type.
// @Tags Downloads
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} models.ApiResponse
// @Router /api/downloads [get]
func GetDownloads(c *gin.Context) {
	files, err := manager.List(c.Request.Context())
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to fetch downloads"))
		return
	}
	if term := c.Query("q"); term != "" {
		files = manager.Search(files, term)
	}

	rows := make([]downloadRow, len(files))
	for i, file := range files {
		rows[i] = downloadRow{DownloadFile: file, SizeLabel: utils.FormatFileSize(file.FileSize)}
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Downloads fetched", rows))
}
