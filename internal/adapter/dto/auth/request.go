package auth

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Username    string  `json:"username" validate:"required,min=1,max=100"`
	Password    string  `json:"password" validate:"required,min=1"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=200"`
}

// LoginRequest represents the request to sign in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest represents the request to refresh access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
