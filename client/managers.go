package client

import "github.com/neonstore-ecommerce/neonstore-admin/models"

// NewUserManager manages the user collection. Users are written as
// multipart forms because of the optional profile image.
func NewUserManager(c *Client) *Manager[models.User] {
	return NewManager(c, Config{Path: "/users", Name: "users"}, func(u models.User) []string {
		return []string{u.FirstName, u.LastName, u.Email}
	})
}

// NewCategoryManager manages the category collection (plain JSON).
func NewCategoryManager(c *Client) *Manager[models.Category] {
	return NewManager(c, Config{Path: "/categories", Name: "categories"}, func(cat models.Category) []string {
		return []string{cat.Name, cat.Description}
	})
}
