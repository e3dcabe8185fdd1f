package model

import (
	"time"

	"github.com/google/uuid"
)

// Pedido lifecycle: Pendente → Recebido (terminal).
const (
	PedidoPendente = "Pendente"
	PedidoRecebido = "Recebido"
)

// PedidoFornecedor is a replenishment request to a supplier.
type PedidoFornecedor struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FornecedorID uuid.UUID `gorm:"type:uuid;not null;index"`
	DataPedido   time.Time `gorm:"not null;index"`
	Status       string    `gorm:"type:varchar(50);not null;default:'Pendente'"`

	Fornecedor *Fornecedor  `gorm:"foreignKey:FornecedorID"`
	Itens      []ItemPedido `gorm:"foreignKey:PedidoID"`
}

func (PedidoFornecedor) TableName() string { return "pedidos_fornecedor" }

// ItemPedido is one ordered line of a PedidoFornecedor.
type ItemPedido struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProdutoID        uuid.UUID `gorm:"type:uuid;not null"`
	QuantidadePedida int       `gorm:"not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (ItemPedido) TableName() string { return "itens_pedido" }
