package repository

import (
	"context"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PedidoRepository interface {
	CreateTx(tx *gorm.DB, p *model.PedidoFornecedor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PedidoFornecedor, error)
	// FindByIDForUpdate locks the order row so two concurrent receipts of the
	// same order serialize and the second one sees status Recebido.
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.PedidoFornecedor, error)
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error
	List(ctx context.Context) ([]model.PedidoFornecedor, error)

	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func (r *pedidoRepo) CreateTx(tx *gorm.DB, p *model.PedidoFornecedor) error {
	return tx.Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PedidoFornecedor, error) {
	var p model.PedidoFornecedor
	err := r.db.WithContext(ctx).
		Preload("Fornecedor").Preload("Itens.Produto").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *pedidoRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.PedidoFornecedor, error) {
	var p model.PedidoFornecedor
	// Lock only the order row; items are loaded afterwards.
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	if err := tx.Preload("Produto").Where("pedido_id = ?", id).Find(&p.Itens).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.PedidoFornecedor{}).Where("id = ?", id).Update("status", status).Error
}

func (r *pedidoRepo) List(ctx context.Context) ([]model.PedidoFornecedor, error) {
	var pedidos []model.PedidoFornecedor
	err := r.db.WithContext(ctx).
		Preload("Fornecedor").Preload("Itens.Produto").
		Order("data_pedido DESC").Find(&pedidos).Error
	return pedidos, err
}
