package model

import (
	"time"

	"github.com/google/uuid"
)

// Cargos de acesso. O cargo é lido apenas pelo middleware de autorização;
// as operações de núcleo recebem o usuário atuante como parâmetro explícito.
const (
	CargoVendedor = "VENDEDOR"
	CargoGerente  = "GERENTE"
)

// Usuario stores system accounts with role-based access.
type Usuario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Login     string    `gorm:"uniqueIndex;not null"`
	SenhaHash string    `gorm:"not null"`
	Cargo     string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Usuario) TableName() string { return "usuarios" }
