package model

import (
	"time"

	"github.com/google/uuid"
)

// Categoria classifies products.
type Categoria struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

func (Categoria) TableName() string { return "categorias" }

// Pagamento is a payment method (tipo + installment count).
// Sales reference it explicitly — there is no implicit default method.
type Pagamento struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo    string    `gorm:"type:varchar(20);not null"`
	Parcela int       `gorm:"not null;default:1"`
}

func (Pagamento) TableName() string { return "pagamentos" }
