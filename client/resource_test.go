package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

func TestCategoryReadYourWrites(t *testing.T) {
	srv := newStore(t)
	c, _ := newLoggedInClient(t, srv.URL)
	manager := NewCategoryManager(c)
	ctx := context.Background()

	before, err := manager.List(ctx)
	require.NoError(t, err)

	created, err := manager.CreateJSON(ctx, models.CategoryRequest{
		Name:        "Audio",
		Description: "Headphones and speakers",
		IsActive:    true,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	after, err := manager.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	require.True(t, containsCategory(after, "Audio"))

	_, err = manager.UpdateJSON(ctx, created.ID, models.CategoryRequest{
		Name:        "Audio Gear",
		Description: "Headphones and speakers",
		IsActive:    false,
	})
	require.NoError(t, err)

	after, err = manager.List(ctx)
	require.NoError(t, err)
	require.True(t, containsCategory(after, "Audio Gear"))
	require.False(t, containsCategory(after, "Audio"))

	require.NoError(t, manager.Delete(ctx, created.ID))
	after, err = manager.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))
}

func TestDeleteAbsentIDLeavesCollectionUnchanged(t *testing.T) {
	srv := newStore(t)
	c, _ := newLoggedInClient(t, srv.URL)
	manager := NewCategoryManager(c)
	ctx := context.Background()

	before, err := manager.List(ctx)
	require.NoError(t, err)

	err = manager.Delete(ctx, 99999)
	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, 404, statusErr.Code)

	after, err := manager.List(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestUserLifecycleWithMultipart(t *testing.T) {
	srv := newStore(t)
	c, _ := newLoggedInClient(t, srv.URL)
	manager := NewUserManager(c)
	ctx := context.Background()

	form := &models.UserForm{
		FirstName: "Carla",
		LastName:  "Muñoz",
		Email:     "carla@example.com",
		Password:  "first-password",
		Country:   "Chile",
		City:      "Concepción",
		Address:   "Pasaje Sur 8",
		Phone:     "+56 9 5555 0000",
		Role:      models.RoleClient,
		IsActive:  true,
	}
	created, err := manager.CreateMultipart(ctx, form.Fields(), nil)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	users, err := manager.List(ctx)
	require.NoError(t, err)
	require.True(t, containsUserEmail(users, "carla@example.com"))

	// Blank password on update must keep the stored one out of the
	// payload entirely.
	form.Password = ""
	form.City = "Temuco"
	fields := form.Fields()
	_, hasPassword := fields["password"]
	require.False(t, hasPassword)

	updated, err := manager.UpdateMultipart(ctx, created.ID, fields, nil)
	require.NoError(t, err)
	require.Equal(t, "Temuco", updated.City)

	require.NoError(t, manager.Delete(ctx, created.ID))
	users, err = manager.List(ctx)
	require.NoError(t, err)
	require.False(t, containsUserEmail(users, "carla@example.com"))
}

func TestListFailureReturnsError(t *testing.T) {
	// Point at a closed server: transport failure, single attempt.
	srv := newStore(t)
	c, _ := newLoggedInClient(t, srv.URL)
	srv.Close()

	items, err := NewCategoryManager(c).List(context.Background())
	require.Error(t, err)
	require.Nil(t, items)
}

func containsCategory(categories []models.Category, name string) bool {
	for _, cat := range categories {
		if cat.Name == name {
			return true
		}
	}
	return false
}

func containsUserEmail(users []models.User, email string) bool {
	for _, u := range users {
		if u.Email == email {
			return true
		}
	}
	return false
}
