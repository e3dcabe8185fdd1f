package repository

import (
	"context"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"

	"gorm.io/gorm"
)

// MovimentacaoRepository appends and lists ledger entries.
// There is no update or delete — the ledger is append-only.
type MovimentacaoRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimentacaoEstoque) error
	List(ctx context.Context, filter dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, int64, error)
}

type movimentacaoRepo struct{ db *gorm.DB }

func NewMovimentacaoRepository(db *gorm.DB) MovimentacaoRepository {
	return &movimentacaoRepo{db: db}
}

func (r *movimentacaoRepo) CreateTx(tx *gorm.DB, m *model.MovimentacaoEstoque) error {
	return tx.Create(m).Error
}

func (r *movimentacaoRepo) List(ctx context.Context, filter dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimentacaoEstoque{})
	if filter.ProdutoID != "" {
		q = q.Where("produto_id = ?", filter.ProdutoID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}
	offset := (page - 1) * limit

	var movs []model.MovimentacaoEstoque
	err := q.Preload("Produto").Preload("Usuario").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&movs).Error
	return movs, total, err
}
