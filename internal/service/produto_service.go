package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProdutoService interface {
	Criar(ctx context.Context, usuarioID uuid.UUID, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	// DefinirPromocao sets or clears (nil) the promotional price.
	DefinirPromocao(ctx context.Context, id uuid.UUID, req dto.PromocaoRequest) (*dto.ProdutoResponse, error)
}

type produtoService struct {
	repo        repository.ProdutoRepository
	estoqueRepo repository.EstoqueRepository
	movRepo     repository.MovimentacaoRepository
	catRepo     repository.CategoriaRepository
	fornRepo    repository.FornecedorRepository
}

func NewProdutoService(
	repo repository.ProdutoRepository,
	estoqueRepo repository.EstoqueRepository,
	movRepo repository.MovimentacaoRepository,
	catRepo repository.CategoriaRepository,
	fornRepo repository.FornecedorRepository,
) ProdutoService {
	return &produtoService{
		repo:        repo,
		estoqueRepo: estoqueRepo,
		movRepo:     movRepo,
		catRepo:     catRepo,
		fornRepo:    fornRepo,
	}
}

// Criar creates the product and its single Estoque row in one transaction.
// An initial positive quantity is recorded as an ENTRADA so the ledger sums
// to the on-hand quantity from day one.
func (s *produtoService) Criar(ctx context.Context, usuarioID uuid.UUID, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, fmt.Errorf("categoria_id inválido: %w", err)
	}
	if _, err := s.catRepo.FindByID(ctx, categoriaID); err != nil {
		return nil, errors.New("categoria não encontrada")
	}

	var fornecedorID *uuid.UUID
	if req.FornecedorID != nil {
		fid, err := uuid.Parse(*req.FornecedorID)
		if err != nil {
			return nil, fmt.Errorf("fornecedor_id inválido: %w", err)
		}
		if _, err := s.fornRepo.FindByID(ctx, fid); err != nil {
			return nil, errors.New("fornecedor não encontrado")
		}
		fornecedorID = &fid
	}

	minimo := req.Minimo
	if minimo < 1 {
		minimo = 1
	}

	var produto model.Produto
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		produto = model.Produto{
			Nome:         req.Nome,
			Descricao:    req.Descricao,
			Preco:        req.Preco,
			CategoriaID:  categoriaID,
			FornecedorID: fornecedorID,
		}
		if err := s.repo.CreateTx(tx, &produto); err != nil {
			return err
		}
		est := &model.Estoque{
			ProdutoID:  produto.ID,
			Quantidade: req.Quantidade,
			Minimo:     minimo,
		}
		if err := s.estoqueRepo.CreateTx(tx, est); err != nil {
			return err
		}
		if req.Quantidade > 0 {
			mov := &model.MovimentacaoEstoque{
				ProdutoID:  produto.ID,
				UsuarioID:  &usuarioID,
				Tipo:       model.MovEntrada,
				Quantidade: req.Quantidade,
				Observacao: "Carga inicial de estoque",
			}
			if err := s.movRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.ProdutoResponse{
		ID:         produto.ID.String(),
		Nome:       produto.Nome,
		Descricao:  produto.Descricao,
		Preco:      produto.Preco,
		Quantidade: req.Quantidade,
		Minimo:     minimo,
	}, nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	produtos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		items = append(items, *produtoToResponse(&p))
	}
	return &dto.ProdutoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	p.Nome = req.Nome
	p.Descricao = req.Descricao
	p.Preco = req.Preco
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) DefinirPromocao(ctx context.Context, id uuid.UUID, req dto.PromocaoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	p.PrecoPromocional = req.PrecoPromocional
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	resp := &dto.ProdutoResponse{
		ID:               p.ID.String(),
		Nome:             p.Nome,
		Descricao:        p.Descricao,
		Preco:            p.Preco,
		PrecoPromocional: p.PrecoPromocional,
	}
	if p.Categoria != nil {
		resp.Categoria = p.Categoria.Nome
	}
	if p.Fornecedor != nil {
		resp.Fornecedor = p.Fornecedor.Nome
	}
	if p.Estoque != nil {
		resp.Quantidade = p.Estoque.Quantidade
		resp.Minimo = p.Estoque.Minimo
	}
	return resp
}
