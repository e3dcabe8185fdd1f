package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venda is created once; total and items are immutable after commit.
type Venda struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DataCompra  time.Time       `gorm:"not null;index"`
	ValorTotal  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ClienteID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	PagamentoID uuid.UUID       `gorm:"type:uuid;not null"`

	Cliente   *Cliente    `gorm:"foreignKey:ClienteID"`
	Pagamento *Pagamento  `gorm:"foreignKey:PagamentoID"`
	Itens     []ItemVenda `gorm:"foreignKey:VendaID"`
}

func (Venda) TableName() string { return "vendas" }

// ItemVenda freezes the unit price charged at sale time — later price
// changes never affect committed sales.
type ItemVenda struct {
	VendaID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantidade    int             `gorm:"not null"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (ItemVenda) TableName() string { return "itens_venda" }
