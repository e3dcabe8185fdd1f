package repository

import (
	"context"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	CreateTx(tx *gorm.DB, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	FindByCPF(ctx context.Context, cpf string) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)

	DB() *gorm.DB
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) DB() *gorm.DB { return r.db }

func (r *clienteRepo) CreateTx(tx *gorm.DB, c *model.Cliente) error {
	return tx.Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Preload("Endereco").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *clienteRepo) FindByCPF(ctx context.Context, cpf string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&c).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&clientes).Error
	return clientes, err
}
