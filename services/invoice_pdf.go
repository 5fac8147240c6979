package services

import (
	"bytes"
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// GenerateSaleInvoicePDF renders a sale with its line items as a PDF
// invoice for the operator to hand out.
func GenerateSaleInvoicePDF(sale *models.Sale, buyer *models.User) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("NEONSTORE", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(8, func() {
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Sale #%d", sale.ID), props.Text{
				Size:  10,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(sale.CreatedAt.Format("Jan 02, 2006"), props.Text{
				Size:  10,
				Align: consts.Right,
				Color: mediumGray,
			})
		})
	})

	if buyer != nil {
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("Billed to: %s %s (%s)", buyer.FirstName, buyer.LastName, buyer.Email), props.Text{
					Size:  10,
					Color: darkGray,
				})
			})
		})
	}

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("Status: "+sale.Status, props.Text{
				Size:  10,
				Color: mediumGray,
			})
		})
	})

	headers := []string{"Product", "Qty", "Unit Price", "Total"}
	contents := make([][]string, len(sale.Items))
	for i, item := range sale.Items {
		contents[i] = []string{
			item.ProductName,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("$%.2f", item.UnitPrice),
			fmt.Sprintf("$%.2f", item.TotalPrice),
		}
	}

	m.TableList(headers, contents, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{6, 2, 2, 2},
		},
		ContentProp: props.TableListContent{
			Size:      9,
			GridSizes: []uint{6, 2, 2, 2},
		},
		Align:              consts.Left,
		HeaderContentSpace: 1,
		Line:               false,
	})

	m.Row(12, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Total: $%.2f", sale.TotalAmount), props.Text{
				Size:  14,
				Style: consts.Bold,
				Align: consts.Right,
				Color: darkGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
