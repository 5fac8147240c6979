package models

import "strconv"

// User roles accepted by the store API.
const (
	RoleClient        = "Client"
	RoleAdministrator = "Administrator"
)

// User as returned by the store API. Password is write-only and never
// present in responses.
type User struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Country   string  `json:"country"`
	City      string  `json:"city"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"is_active"`
	ImageURL  *string `json:"image_url,omitempty"`
}

// UserForm is the multipart form for user create and update.
type UserForm struct {
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password"`
	Country   string `form:"country" binding:"required"`
	City      string `form:"city" binding:"required"`
	Address   string `form:"address" binding:"required"`
	Phone     string `form:"phone" binding:"required"`
	Role      string `form:"role" binding:"required,oneof=Client Administrator"`
	IsActive  bool   `form:"is_active"`
	Image     *FileUpload
}

// Fields returns the multipart field map sent to the store API.
// The password field is omitted when blank so updates keep the
// existing password.
func (f *UserForm) Fields() map[string]string {
	fields := map[string]string{
		"first_name": f.FirstName,
		"last_name":  f.LastName,
		"email":      f.Email,
		"country":    f.Country,
		"city":       f.City,
		"address":    f.Address,
		"phone":      f.Phone,
		"role":       f.Role,
		"is_active":  strconv.FormatBool(f.IsActive),
	}
	if f.Password != "" {
		fields["password"] = f.Password
	}
	return fields
}
