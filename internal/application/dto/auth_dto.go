package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse datos públicos del usuario autenticado.
type UserResponse struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	RoleID   int    `json:"role_id"`
}

// LoginResponse token bearer emitido tras un login correcto.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}
