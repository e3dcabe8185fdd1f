package dto

type LoginRequest struct {
	Login string `json:"login" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

type RegisterRequest struct {
	Login string `json:"login" validate:"required,min=3,max=80"`
	Senha string `json:"senha" validate:"required,min=4"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UsuarioResponse struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Cargo string `json:"cargo"`
}
