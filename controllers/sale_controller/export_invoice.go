package sale_controller

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
	"github.com/neonstore-ecommerce/neonstore-admin/services"
)

// ExportInvoice godoc
// @Summary Download a sale invoice PDF
// @Description Generate an invoice for the sale and stream it as an attachment.
// @Tags Sales
// @Produce octet-stream
// @Param id path int true "Sale ID"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse
// @Router /api/sales/{id}/invoice [get]
func ExportInvoice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid sale ID"))
		return
	}

	ctx := c.Request.Context()
	sale, err := manager.GetDetails(ctx, uint(id))
	if err != nil {
		c.JSON(client.HTTPStatus(err), models.ErrorResponse(c, "Failed to fetch sale details"))
		return
	}

	// Buyer lookup is best effort; the invoice renders without it.
	var buyer *models.User
	if userList, err := users.List(ctx); err == nil {
		for i := range userList {
			if userList[i].ID == sale.UserID {
				buyer = &userList[i]
				break
			}
		}
	} else {
		log.Printf("[sales] buyer lookup for invoice %d failed: %v", id, err)
	}

	pdfBuffer, err := services.GenerateSaleInvoicePDF(&sale, buyer)
	if err != nil {
		log.Printf("[sales] invoice generation for sale %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	filename := fmt.Sprintf("invoice-sale-%d.pdf", sale.ID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
