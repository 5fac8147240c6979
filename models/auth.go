package models

// Credentials is the login payload sent to the store API.
type Credentials struct {
	Email    string `json:"email" binding:"required,email" example:"admin@neonstore.com"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// TokenResponse is the store API's answer to a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// SessionInfo reports the gate state to the dashboard front.
type SessionInfo struct {
	Authenticated bool `json:"authenticated"`
}
