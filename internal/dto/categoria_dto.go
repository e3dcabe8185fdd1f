package dto

type CriarCategoriaRequest struct {
	Nome string `json:"nome" validate:"required,max=50"`
}

type CategoriaResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

type CriarPagamentoRequest struct {
	Tipo    string `json:"tipo" validate:"required,max=20"`
	Parcela int    `json:"parcela" validate:"min=1"`
}

type PagamentoResponse struct {
	ID      string `json:"id"`
	Tipo    string `json:"tipo"`
	Parcela int    `json:"parcela"`
}
