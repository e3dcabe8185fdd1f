package model

import (
	"time"

	"github.com/google/uuid"
)

// Estoque holds the on-hand quantity per product. Mutated only through
// EstoqueService.AjustarEstoque, which pairs every change with a
// MovimentacaoEstoque row in the same transaction.
// Quantidade >= 0 is a hard invariant, backed by a CHECK constraint.
type Estoque struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Quantidade int       `gorm:"not null;default:0"`
	Minimo     int       `gorm:"not null;default:1"`
	// LastAlert debounces repeated low-stock notifications (24h window).
	LastAlert *time.Time
	UpdatedAt time.Time
}

func (Estoque) TableName() string { return "estoques" }
