package dto

// DefinirEstoqueRequest sets the absolute on-hand quantity of a product.
// The service records the signed delta as an AJUSTE MANUAL movement.
type DefinirEstoqueRequest struct {
	Quantidade int     `json:"quantidade" validate:"min=0"`
	Observacao *string `json:"observacao"`
}

type EstoqueResponse struct {
	ProdutoID  string `json:"produto_id"`
	Produto    string `json:"produto,omitempty"`
	Quantidade int    `json:"quantidade"`
	Minimo     int    `json:"minimo"`
}

type AlertaEstoqueResponse struct {
	ProdutoID  string `json:"produto_id"`
	Produto    string `json:"produto"`
	Quantidade int    `json:"quantidade"`
	Minimo     int    `json:"minimo"`
	Fornecedor string `json:"fornecedor,omitempty"`
}

type MovimentacaoFilter struct {
	ProdutoID string `form:"produto_id"`
	Tipo      string `form:"tipo"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

type MovimentacaoResponse struct {
	ID         string `json:"id"`
	Produto    string `json:"produto"`
	Usuario    string `json:"usuario,omitempty"`
	Tipo       string `json:"tipo"`
	Quantidade int    `json:"quantidade"`
	Observacao string `json:"observacao,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type MovimentacaoListResponse struct {
	Data  []MovimentacaoResponse `json:"data"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}
