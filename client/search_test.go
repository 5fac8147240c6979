package client

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

func categoryFields(c models.Category) []string {
	return []string{c.Name, c.Description}
}

func TestFilterMatchesCaseInsensitively(t *testing.T) {
	items := []models.Category{
		{Name: "Keyboards", Description: "Mechanical and membrane"},
		{Name: "Displays", Description: "Monitors and panels"},
		{Name: "Audio", Description: "Headphones"},
	}

	got := Filter(items, "KEYBOARD", categoryFields)
	require.Len(t, got, 1)
	require.Equal(t, "Keyboards", got[0].Name)

	// Matches on any field, not just the first.
	got = Filter(items, "monitors", categoryFields)
	require.Len(t, got, 1)
	require.Equal(t, "Displays", got[0].Name)
}

func TestFilterEmptyTermReturnsInput(t *testing.T) {
	items := []models.Category{{Name: "Keyboards"}, {Name: "Displays"}}
	require.Equal(t, items, Filter(items, "", categoryFields))
}

func TestFilterIsIdempotent(t *testing.T) {
	items := []models.Category{
		{Name: "Keyboards"},
		{Name: "Keycaps"},
		{Name: "Displays"},
	}

	once := Filter(items, "key", categoryFields)
	twice := Filter(once, "key", categoryFields)
	require.Equal(t, once, twice)
	require.Len(t, once, 2)
}

func TestFilterNoMatchYieldsEmpty(t *testing.T) {
	items := []models.Category{{Name: "Keyboards"}}
	got := Filter(items, "zzz", categoryFields)
	require.Empty(t, got)
}
