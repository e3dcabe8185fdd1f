package dto

import "github.com/shopspring/decimal"

// VendasPorMesResponse: one total per month of the requested year.
type VendasPorMesResponse struct {
	Ano    int               `json:"ano"`
	Mensal []decimal.Decimal `json:"mensal"`
}

type EstoqueAtualItem struct {
	Produto    string `json:"produto"`
	Quantidade int    `json:"quantidade"`
}

type EstoqueAtualResponse struct {
	Itens []EstoqueAtualItem `json:"itens"`
}

type DashboardResponse struct {
	TotalVendas          decimal.Decimal   `json:"total_vendas"`
	TotalItensEstoque    int64             `json:"total_itens_estoque"`
	ProdutosParados      []ProdutoResponse `json:"produtos_parados"`
	ProdutosAbaixoMinimo int               `json:"produtos_abaixo_minimo"`
}
