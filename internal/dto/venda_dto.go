package dto

import "github.com/shopspring/decimal"

type ItemVendaRequest struct {
	ProdutoID  string `json:"produto_id" validate:"required,uuid"`
	Quantidade int    `json:"quantidade" validate:"required,gt=0"`
}

// RegistrarVendaRequest — pagamento is a required explicit choice, never an
// implicit first-row default.
type RegistrarVendaRequest struct {
	ClienteID   string             `json:"cliente_id" validate:"required,uuid"`
	PagamentoID string             `json:"pagamento_id" validate:"required,uuid"`
	Itens       []ItemVendaRequest `json:"itens" validate:"required,min=1,dive"`
}

type ItemVendaResponse struct {
	Produto       string          `json:"produto"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type VendaResponse struct {
	ID         string              `json:"id"`
	Cliente    string              `json:"cliente,omitempty"`
	Pagamento  string              `json:"pagamento,omitempty"`
	ValorTotal decimal.Decimal     `json:"valor_total"`
	DataCompra string              `json:"data_compra"`
	Itens      []ItemVendaResponse `json:"itens"`
}

type VendaFilter struct {
	Data  string `form:"data"` // YYYY-MM-DD
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

type VendaListResponse struct {
	Data  []VendaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
