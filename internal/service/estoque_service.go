package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/repository"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// alertaDebounce suppresses repeat low-stock alerts for the same product.
const alertaDebounce = 24 * time.Hour

// EstoqueService is the single write path to on-hand quantities. Every
// mutation pairs the quantity change with an immutable ledger row in the
// same transaction — one commits only if both do.
type EstoqueService interface {
	// AjustarEstoqueTx applies a signed delta inside a caller-owned
	// transaction. The stock row is read under FOR UPDATE so concurrent
	// writers against the same product serialize; a delta that would leave
	// the quantity negative is rejected with EstoqueInsuficienteError.
	// Returns the new on-hand quantity.
	AjustarEstoqueTx(ctx context.Context, tx *gorm.DB, produtoID uuid.UUID, delta int, tipo string, usuarioID *uuid.UUID, observacao string) (int, error)

	// DefinirEstoque sets the absolute quantity, recording the signed
	// difference as an AJUSTE MANUAL movement. Own transaction.
	DefinirEstoque(ctx context.Context, usuarioID *uuid.UUID, produtoID uuid.UUID, req dto.DefinirEstoqueRequest) (*dto.EstoqueResponse, error)

	ConsultarPorProduto(ctx context.Context, produtoID uuid.UUID) (*dto.EstoqueResponse, error)
	ListarAlertas(ctx context.Context) ([]dto.AlertaEstoqueResponse, error)
	ListarMovimentacoes(ctx context.Context, filter dto.MovimentacaoFilter) (*dto.MovimentacaoListResponse, error)

	// DispararAlertas enqueues low-stock notification jobs for the given
	// products. Best effort, post-commit — never fails the caller.
	DispararAlertas(ctx context.Context, produtoIDs []uuid.UUID)
}

type estoqueService struct {
	estoqueRepo repository.EstoqueRepository
	produtoRepo repository.ProdutoRepository
	movRepo     repository.MovimentacaoRepository
	dispatcher  *worker.Dispatcher
}

func NewEstoqueService(
	estoqueRepo repository.EstoqueRepository,
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentacaoRepository,
	dispatcher *worker.Dispatcher,
) EstoqueService {
	return &estoqueService{
		estoqueRepo: estoqueRepo,
		produtoRepo: produtoRepo,
		movRepo:     movRepo,
		dispatcher:  dispatcher,
	}
}

func (s *estoqueService) AjustarEstoqueTx(ctx context.Context, tx *gorm.DB, produtoID uuid.UUID, delta int, tipo string, usuarioID *uuid.UUID, observacao string) (int, error) {
	est, err := s.estoqueRepo.FindByProdutoIDForUpdate(tx, produtoID)
	if err != nil {
		return 0, fmt.Errorf("produto %s sem registro de estoque: %w", produtoID, ErrProdutoNaoEncontrado)
	}

	novo := est.Quantidade + delta
	if novo < 0 {
		nome := produtoID.String()
		if p, perr := s.produtoRepo.FindByIDTx(tx, produtoID); perr == nil {
			nome = p.Nome
		}
		return 0, &EstoqueInsuficienteError{
			Produto:    nome,
			Disponivel: est.Quantidade,
			Solicitado: -delta,
		}
	}

	est.Quantidade = novo
	if err := s.estoqueRepo.SaveTx(tx, est); err != nil {
		return 0, err
	}

	mov := &model.MovimentacaoEstoque{
		ProdutoID:  produtoID,
		UsuarioID:  usuarioID,
		Tipo:       tipo,
		Quantidade: delta,
		Observacao: observacao,
	}
	if err := s.movRepo.CreateTx(tx, mov); err != nil {
		return 0, err
	}
	return novo, nil
}

func (s *estoqueService) DefinirEstoque(ctx context.Context, usuarioID *uuid.UUID, produtoID uuid.UUID, req dto.DefinirEstoqueRequest) (*dto.EstoqueResponse, error) {
	observacao := "Ajuste manual de estoque"
	if req.Observacao != nil && *req.Observacao != "" {
		observacao = *req.Observacao
	}

	var novo int
	txErr := runTx(ctx, s.estoqueRepo.DB(), func(tx *gorm.DB) error {
		est, err := s.estoqueRepo.FindByProdutoIDForUpdate(tx, produtoID)
		if err != nil {
			return fmt.Errorf("produto %s sem registro de estoque: %w", produtoID, ErrProdutoNaoEncontrado)
		}
		delta := req.Quantidade - est.Quantidade
		if delta == 0 {
			novo = est.Quantidade
			return nil
		}
		novo, err = s.AjustarEstoqueTx(ctx, tx, produtoID, delta, model.MovAjusteManual, usuarioID, observacao)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	s.DispararAlertas(ctx, []uuid.UUID{produtoID})

	return &dto.EstoqueResponse{
		ProdutoID:  produtoID.String(),
		Quantidade: novo,
	}, nil
}

func (s *estoqueService) ConsultarPorProduto(ctx context.Context, produtoID uuid.UUID) (*dto.EstoqueResponse, error) {
	est, err := s.estoqueRepo.FindByProdutoID(ctx, produtoID)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	resp := &dto.EstoqueResponse{
		ProdutoID:  produtoID.String(),
		Quantidade: est.Quantidade,
		Minimo:     est.Minimo,
	}
	if p, perr := s.produtoRepo.FindByID(ctx, produtoID); perr == nil {
		resp.Produto = p.Nome
	}
	return resp, nil
}

func (s *estoqueService) ListarAlertas(ctx context.Context) ([]dto.AlertaEstoqueResponse, error) {
	produtos, err := s.estoqueRepo.ListAbaixoDoMinimo(ctx)
	if err != nil {
		return nil, err
	}
	alertas := make([]dto.AlertaEstoqueResponse, 0, len(produtos))
	for _, p := range produtos {
		a := dto.AlertaEstoqueResponse{
			ProdutoID: p.ID.String(),
			Produto:   p.Nome,
		}
		if p.Estoque != nil {
			a.Quantidade = p.Estoque.Quantidade
			a.Minimo = p.Estoque.Minimo
		}
		if p.Fornecedor != nil {
			a.Fornecedor = p.Fornecedor.Nome
		}
		alertas = append(alertas, a)
	}
	return alertas, nil
}

func (s *estoqueService) ListarMovimentacoes(ctx context.Context, filter dto.MovimentacaoFilter) (*dto.MovimentacaoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 100
	}
	movs, total, err := s.movRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		item := dto.MovimentacaoResponse{
			ID:         m.ID.String(),
			Tipo:       m.Tipo,
			Quantidade: m.Quantidade,
			Observacao: m.Observacao,
			CreatedAt:  m.CreatedAt.Format(time.RFC3339),
		}
		if m.Produto != nil {
			item.Produto = m.Produto.Nome
		}
		if m.Usuario != nil {
			item.Usuario = m.Usuario.Login
		}
		items = append(items, item)
	}
	return &dto.MovimentacaoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *estoqueService) DispararAlertas(ctx context.Context, produtoIDs []uuid.UUID) {
	if s.dispatcher == nil {
		return
	}
	for _, id := range produtoIDs {
		est, err := s.estoqueRepo.FindByProdutoID(ctx, id)
		if err != nil || est.Quantidade > est.Minimo {
			continue
		}
		if est.LastAlert != nil && time.Since(*est.LastAlert) < alertaDebounce {
			continue
		}
		p, err := s.produtoRepo.FindByID(ctx, id)
		if err != nil {
			continue
		}
		payload := worker.AlertaEstoquePayload{
			ProdutoID:  id.String(),
			Produto:    p.Nome,
			Quantidade: est.Quantidade,
			Minimo:     est.Minimo,
		}
		if p.Fornecedor != nil {
			payload.FornecedorID = p.Fornecedor.ID.String()
			payload.Fornecedor = p.Fornecedor.Nome
			if p.Fornecedor.Email != nil {
				payload.FornecedorEmail = *p.Fornecedor.Email
			}
		}
		if err := s.dispatcher.EnqueueAlertaEstoque(ctx, payload); err != nil {
			log.Warn().Err(err).Str("produto_id", id.String()).Msg("falha ao enfileirar alerta de estoque")
			continue
		}
		if err := s.estoqueRepo.UpdateLastAlert(ctx, id); err != nil {
			log.Warn().Err(err).Str("produto_id", id.String()).Msg("falha ao atualizar last_alert")
		}
	}
}
