package dto

type ItemPedidoRequest struct {
	ProdutoID  string `json:"produto_id" validate:"required,uuid"`
	Quantidade int    `json:"quantidade" validate:"required,gt=0"`
}

type CriarPedidoRequest struct {
	FornecedorID string              `json:"fornecedor_id" validate:"required,uuid"`
	Itens        []ItemPedidoRequest `json:"itens" validate:"required,min=1,dive"`
	// Mensagem adicional gravada no log do pedido.
	Mensagem *string `json:"mensagem"`
}

// ReceberPedidoRequest maps produto_id → quantidade efetivamente recebida.
// Linhas ausentes assumem a quantidade pedida.
type ReceberPedidoRequest struct {
	Recebidos map[string]int `json:"recebidos"`
}

type ItemPedidoResponse struct {
	ProdutoID  string `json:"produto_id"`
	Produto    string `json:"produto"`
	Quantidade int    `json:"quantidade"`
}

type PedidoResponse struct {
	ID         string               `json:"id"`
	Fornecedor string               `json:"fornecedor,omitempty"`
	DataPedido string               `json:"data_pedido"`
	Status     string               `json:"status"`
	Itens      []ItemPedidoResponse `json:"itens"`
}

type MensagemResponse struct {
	ID         string `json:"id"`
	Fornecedor string `json:"fornecedor,omitempty"`
	Produto    string `json:"produto,omitempty"`
	Conteudo   string `json:"conteudo"`
	DataEnvio  string `json:"data_envio"`
	Status     string `json:"status"`
}
