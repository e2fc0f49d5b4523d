package models

// User is the single vendor account stored inside the document.
// The password field round-trips as-is: documents imported from the
// original app carry a plaintext value, freshly saved ones a bcrypt hash.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
