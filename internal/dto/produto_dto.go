package dto

import "github.com/shopspring/decimal"

type CriarProdutoRequest struct {
	Nome         string          `json:"nome" validate:"required,max=200"`
	Descricao    *string         `json:"descricao"`
	Preco        decimal.Decimal `json:"preco" validate:"required,gt=0"`
	Quantidade   int             `json:"quantidade" validate:"min=0"`
	Minimo       int             `json:"minimo" validate:"min=0"`
	CategoriaID  string          `json:"categoria_id" validate:"required,uuid"`
	FornecedorID *string         `json:"fornecedor_id" validate:"omitempty,uuid"`
}

type AtualizarProdutoRequest struct {
	Nome      string          `json:"nome" validate:"required,max=200"`
	Descricao *string         `json:"descricao"`
	Preco     decimal.Decimal `json:"preco" validate:"required,gt=0"`
}

// PromocaoRequest sets the promotional price; a nil value clears it.
type PromocaoRequest struct {
	PrecoPromocional *decimal.Decimal `json:"preco_promocional" validate:"omitempty,gt=0"`
}

type ProdutoFilter struct {
	Nome        string `form:"q"`
	CategoriaID string `form:"categoria_id"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}

type ProdutoResponse struct {
	ID               string           `json:"id"`
	Nome             string           `json:"nome"`
	Descricao        *string          `json:"descricao,omitempty"`
	Preco            decimal.Decimal  `json:"preco"`
	PrecoPromocional *decimal.Decimal `json:"preco_promocional,omitempty"`
	Categoria        string           `json:"categoria,omitempty"`
	Fornecedor       string           `json:"fornecedor,omitempty"`
	Quantidade       int              `json:"quantidade"`
	Minimo           int              `json:"minimo"`
}

type ProdutoListResponse struct {
	Data  []ProdutoResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
