package client

import (
	"context"
	"fmt"
	"log"

	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// SaleManager adds the read-only detail fetch to the generic manager.
type SaleManager struct {
	*Manager[models.Sale]
}

func NewSaleManager(c *Client) *SaleManager {
	sales := NewManager(c, Config{Path: "/sales", Name: "sales"}, func(s models.Sale) []string {
		return []string{s.Status, fmt.Sprintf("%d", s.ID)}
	})
	return &SaleManager{Manager: sales}
}

// GetDetails fetches one sale with its line items.
func (m *SaleManager) GetDetails(ctx context.Context, id uint) (models.Sale, error) {
	var sale models.Sale
	if err := m.client.getJSON(ctx, fmt.Sprintf("/sales/%d", id), &sale); err != nil {
		log.Printf("[sales] detail fetch %d failed: %v", id, err)
		return models.Sale{}, err
	}
	return sale, nil
}

// PreviewTotal is the form-side total shown while editing line items:
// the sum of quantity times unit price. It is operator feedback only;
// the stored total comes from the store API.
func PreviewTotal(items []models.SaleItemRequest) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}
