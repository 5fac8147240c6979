package mockapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) listUsers(c *gin.Context) {
	var users []User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (s *Server) createUser(c *gin.Context) {
	password := c.PostForm("password")
	if password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Password is required"})
		return
	}
	role := c.PostForm("role")
	if role != "Client" && role != "Administrator" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid role. Must be Client or Administrator."})
		return
	}
	hash, err := hashPassword(password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Hashing failed"})
		return
	}

	isActive, _ := strconv.ParseBool(c.PostForm("is_active"))
	user := User{
		FirstName:    c.PostForm("first_name"),
		LastName:     c.PostForm("last_name"),
		Email:        c.PostForm("email"),
		PasswordHash: hash,
		Country:      c.PostForm("country"),
		City:         c.PostForm("city"),
		Address:      c.PostForm("address"),
		Phone:        c.PostForm("phone"),
		Role:         role,
		IsActive:     isActive,
		ImageURL:     formImageURL(c),
	}
	if user.FirstName == "" || user.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing required fields"})
		return
	}
	if err := s.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not create user"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var user User
	if err := s.db.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}

	role := c.PostForm("role")
	if role != "Client" && role != "Administrator" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid role. Must be Client or Administrator."})
		return
	}

	user.FirstName = c.PostForm("first_name")
	user.LastName = c.PostForm("last_name")
	user.Email = c.PostForm("email")
	user.Country = c.PostForm("country")
	user.City = c.PostForm("city")
	user.Address = c.PostForm("address")
	user.Phone = c.PostForm("phone")
	user.Role = role
	user.IsActive, _ = strconv.ParseBool(c.PostForm("is_active"))

	// A blank password keeps the stored one.
	if password := c.PostForm("password"); password != "" {
		hash, err := hashPassword(password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Hashing failed"})
			return
		}
		user.PasswordHash = hash
	}
	if image := formImageURL(c); image != nil {
		user.ImageURL = image
	}

	if err := s.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not update user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result := s.db.Delete(&User{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
