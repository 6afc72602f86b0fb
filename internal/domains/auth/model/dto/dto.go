package dto

import "strings"

type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"secret"`
}

// Normalize trims the username. The password is compared exactly as typed.
func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

func (r *LoginRequest) HasCredentials() bool {
	return r.Username != "" && r.Password != ""
}

type LoginResponse struct {
	Success bool   `json:"success"         example:"true"`
	Error   string `json:"error,omitempty" example:"Invalid credentials"`
}
