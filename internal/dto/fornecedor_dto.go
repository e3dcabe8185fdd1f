package dto

type CriarFornecedorRequest struct {
	Nome     string  `json:"nome" validate:"required,max=120"`
	CNPJ     string  `json:"cnpj" validate:"required,max=18"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefone *string `json:"telefone"`
	CEP      string  `json:"cep" validate:"required"`
	Numero   string  `json:"numero" validate:"required"`
}

type FornecedorResponse struct {
	ID       string  `json:"id"`
	Nome     string  `json:"nome"`
	CNPJ     string  `json:"cnpj"`
	Email    *string `json:"email,omitempty"`
	Telefone *string `json:"telefone,omitempty"`
}
