package client

import (
	"context"
	"log"
	"strings"

	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// Description stamped on categories created through the product form's
// escape hatch.
const autoCategoryDescription = "Category created automatically from the product form"

// ProductManager wraps the generic manager with the new-category
// escape hatch: a product may reference a category by a name the store
// does not know yet, in which case the category is created right after
// the product save.
type ProductManager struct {
	*Manager[models.Product]
	categories *Manager[models.Category]
}

func NewProductManager(c *Client) *ProductManager {
	products := NewManager(c, Config{Path: "/products", Name: "products"}, func(p models.Product) []string {
		return []string{p.Name, p.Description, p.Category}
	})
	return &ProductManager{
		Manager:    products,
		categories: NewCategoryManager(c),
	}
}

// KnownCategories fetches the category list the escape-hatch check in
// Save compares against.
func (m *ProductManager) KnownCategories(ctx context.Context) ([]models.Category, error) {
	return m.categories.List(ctx)
}

// Save creates (id == 0) or updates a product, then fires the category
// auto-create when the form names a category absent from known. The
// two steps are not transactional: if the category create fails the
// product is already saved, and the returned warning reports the gap.
func (m *ProductManager) Save(ctx context.Context, id uint, form *models.ProductForm, known []models.Category) (models.Product, string, error) {
	var (
		product models.Product
		err     error
	)
	if id == 0 {
		product, err = m.CreateMultipart(ctx, form.Fields(), form.Image)
	} else {
		product, err = m.UpdateMultipart(ctx, id, form.Fields(), form.Image)
	}
	if err != nil {
		return models.Product{}, "", err
	}

	if categoryKnown(form.Category, known) {
		return product, "", nil
	}

	_, err = m.categories.CreateJSON(ctx, models.CategoryRequest{
		Name:        form.Category,
		Description: autoCategoryDescription,
		IsActive:    true,
	})
	if err != nil {
		log.Printf("[products] product %d saved but category %q was not created: %v", product.ID, form.Category, err)
		return product, "category " + form.Category + " could not be created", nil
	}
	return product, "", nil
}

func categoryKnown(name string, known []models.Category) bool {
	for _, cat := range known {
		if strings.EqualFold(cat.Name, name) {
			return true
		}
	}
	return false
}
