package repository

import (
	"context"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EstoqueRepository is the only write path to on-hand quantities.
type EstoqueRepository interface {
	CreateTx(tx *gorm.DB, e *model.Estoque) error
	FindByProdutoID(ctx context.Context, produtoID uuid.UUID) (*model.Estoque, error)
	// FindByProdutoIDForUpdate locks the row (SELECT ... FOR UPDATE) so that
	// concurrent writers against the same product serialize on it.
	FindByProdutoIDForUpdate(tx *gorm.DB, produtoID uuid.UUID) (*model.Estoque, error)
	SaveTx(tx *gorm.DB, e *model.Estoque) error
	UpdateLastAlert(ctx context.Context, produtoID uuid.UUID) error
	ListAbaixoDoMinimo(ctx context.Context) ([]model.Produto, error)
	SumQuantidade(ctx context.Context) (int64, error)

	DB() *gorm.DB
}

type estoqueRepo struct{ db *gorm.DB }

func NewEstoqueRepository(db *gorm.DB) EstoqueRepository { return &estoqueRepo{db: db} }

func (r *estoqueRepo) CreateTx(tx *gorm.DB, e *model.Estoque) error {
	return tx.Create(e).Error
}

func (r *estoqueRepo) FindByProdutoID(ctx context.Context, produtoID uuid.UUID) (*model.Estoque, error) {
	var e model.Estoque
	err := r.db.WithContext(ctx).Where("produto_id = ?", produtoID).First(&e).Error
	return &e, err
}

func (r *estoqueRepo) FindByProdutoIDForUpdate(tx *gorm.DB, produtoID uuid.UUID) (*model.Estoque, error) {
	var e model.Estoque
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("produto_id = ?", produtoID).First(&e).Error
	return &e, err
}

func (r *estoqueRepo) SaveTx(tx *gorm.DB, e *model.Estoque) error {
	return tx.Save(e).Error
}

func (r *estoqueRepo) UpdateLastAlert(ctx context.Context, produtoID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Estoque{}).
		Where("produto_id = ?", produtoID).
		Update("last_alert", gorm.Expr("now()")).Error
}

// ListAbaixoDoMinimo returns products whose on-hand quantity is at or below
// the configured minimum, supplier preloaded for the alert flow.
func (r *estoqueRepo) ListAbaixoDoMinimo(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).
		Joins("JOIN estoques ON estoques.produto_id = produtos.id").
		Where("estoques.quantidade <= estoques.minimo").
		Preload("Estoque").Preload("Fornecedor").
		Order("produtos.nome ASC").
		Find(&produtos).Error
	return produtos, err
}

func (r *estoqueRepo) SumQuantidade(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Estoque{}).
		Select("COALESCE(SUM(quantidade), 0)").Scan(&total).Error
	return total, err
}

func (r *estoqueRepo) DB() *gorm.DB { return r.db }
