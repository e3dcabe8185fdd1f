package dto

type CriarClienteRequest struct {
	Nome     string  `json:"nome" validate:"required,max=100"`
	CPF      string  `json:"cpf" validate:"required"`
	Telefone *string `json:"telefone"`
	CEP      *string `json:"cep"`
	Numero   *string `json:"numero"`
}

type ClienteResponse struct {
	ID       string  `json:"id"`
	Nome     string  `json:"nome"`
	CPF      string  `json:"cpf"`
	Telefone *string `json:"telefone,omitempty"`
}
