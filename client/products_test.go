package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

func TestProductSaveAutoCreatesUnknownCategory(t *testing.T) {
	srv := newStore(t)
	c, _ := newLoggedInClient(t, srv.URL)
	manager := NewProductManager(c)
	ctx := context.Background()

	known, err := manager.KnownCategories(ctx)
	require.NoError(t, err)
	require.False(t, containsCategory(known, "Cables"))

	form := &models.ProductForm{
		Name:        "USB-C Cable 2m",
		Description: "Braided charging cable",
		Price:       9.90,
		Stock:       100,
		Category:    "Cables",
		IsActive:    true,
	}
	product, warning, err := manager.Save(ctx, 0, form, known)
	require.NoError(t, err)
	require.Empty(t, warning)
	require.NotZero(t, product.ID)

	// The escape hatch created the category with the fixed description.
	categories, err := manager.KnownCategories(ctx)
	require.NoError(t, err)
	var created *models.Category
	for i := range categories {
		if categories[i].Name == "Cables" {
			created = &categories[i]
		}
	}
	require.NotNil(t, created)
	require.Equal(t, autoCategoryDescription, created.Description)
}

func TestProductSaveSkipsKnownCategory(t *testing.T) {
	srv := newStore(t)
	c, _ := newLoggedInClient(t, srv.URL)
	manager := NewProductManager(c)
	ctx := context.Background()

	known, err := manager.KnownCategories(ctx)
	require.NoError(t, err)
	count := len(known)
	require.True(t, containsCategory(known, "Keyboards"))

	form := &models.ProductForm{
		Name:        "Neon K104",
		Description: "Full-size mechanical keyboard",
		Price:       119.00,
		Stock:       12,
		Category:    "keyboards", // case-insensitive match against "Keyboards"
		IsActive:    true,
	}
	_, warning, err := manager.Save(ctx, 0, form, known)
	require.NoError(t, err)
	require.Empty(t, warning)

	categories, err := manager.KnownCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, count)
}

func TestProductUpdateThroughSave(t *testing.T) {
	srv := newStore(t)
	c, _ := newLoggedInClient(t, srv.URL)
	manager := NewProductManager(c)
	ctx := context.Background()

	products, err := manager.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, products)
	target := products[0]

	known, err := manager.KnownCategories(ctx)
	require.NoError(t, err)

	form := &models.ProductForm{
		Name:        target.Name,
		Description: target.Description,
		Price:       target.Price + 10,
		Stock:       target.Stock,
		Category:    target.Category,
		IsActive:    target.IsActive,
	}
	updated, warning, err := manager.Save(ctx, target.ID, form, known)
	require.NoError(t, err)
	require.Empty(t, warning)
	require.Equal(t, target.Price+10, updated.Price)

	refreshed, err := manager.List(ctx)
	require.NoError(t, err)
	for _, p := range refreshed {
		if p.ID == target.ID {
			require.Equal(t, target.Price+10, p.Price)
		}
	}
}
