package dto

// LoginRequest entrada de login por usuário e senha.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse saída de um usuário autenticado (sem hash de senha).
type UserResponse struct {
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// LoginResponse saída com o token JWT e as capacidades por módulo.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
