package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PedidoService interface {
	CriarPedido(ctx context.Context, usuarioID uuid.UUID, req dto.CriarPedidoRequest) (*dto.PedidoResponse, error)
	// ReceberPedido processa o recebimento integral de um pedido Pendente:
	// uma ENTRADA por linha e transição única Pendente → Recebido, tudo em
	// uma transação. Um pedido já recebido retorna ErrPedidoJaProcessado.
	ReceberPedido(ctx context.Context, usuarioID uuid.UUID, pedidoID uuid.UUID, req dto.ReceberPedidoRequest) (*dto.PedidoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	ListarPedidos(ctx context.Context) ([]dto.PedidoResponse, error)
	ListarMensagens(ctx context.Context) ([]dto.MensagemResponse, error)
}

type pedidoService struct {
	repo           repository.PedidoRepository
	fornecedorRepo repository.FornecedorRepository
	produtoRepo    repository.ProdutoRepository
	mensagemRepo   repository.MensagemRepository
	estoque        EstoqueService
}

func NewPedidoService(
	repo repository.PedidoRepository,
	fornecedorRepo repository.FornecedorRepository,
	produtoRepo repository.ProdutoRepository,
	mensagemRepo repository.MensagemRepository,
	estoque EstoqueService,
) PedidoService {
	return &pedidoService{
		repo:           repo,
		fornecedorRepo: fornecedorRepo,
		produtoRepo:    produtoRepo,
		mensagemRepo:   mensagemRepo,
		estoque:        estoque,
	}
}

func (s *pedidoService) CriarPedido(ctx context.Context, usuarioID uuid.UUID, req dto.CriarPedidoRequest) (*dto.PedidoResponse, error) {
	fornecedorID, err := uuid.Parse(req.FornecedorID)
	if err != nil {
		return nil, fmt.Errorf("fornecedor_id inválido: %w", err)
	}
	fornecedor, err := s.fornecedorRepo.FindByID(ctx, fornecedorID)
	if err != nil {
		return nil, errors.New("fornecedor não encontrado")
	}

	type resolvedItem struct {
		produtoID  uuid.UUID
		nome       string
		quantidade int
	}
	var resolved []resolvedItem
	for _, item := range req.Itens {
		if item.Quantidade <= 0 {
			continue
		}
		pid, err := uuid.Parse(item.ProdutoID)
		if err != nil {
			return nil, fmt.Errorf("produto_id inválido: %w", err)
		}
		p, err := s.produtoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("produto %s: %w", item.ProdutoID, ErrProdutoNaoEncontrado)
		}
		resolved = append(resolved, resolvedItem{produtoID: pid, nome: p.Nome, quantidade: item.Quantidade})
	}
	if len(resolved) == 0 {
		return nil, errors.New("adicione ao menos um produto com quantidade maior que zero")
	}

	var pedido model.PedidoFornecedor
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		pedido = model.PedidoFornecedor{
			FornecedorID: fornecedorID,
			DataPedido:   time.Now().UTC(),
			Status:       model.PedidoPendente,
		}
		for _, r := range resolved {
			pedido.Itens = append(pedido.Itens, model.ItemPedido{
				ProdutoID:        r.produtoID,
				QuantidadePedida: r.quantidade,
			})
		}
		if err := s.repo.CreateTx(tx, &pedido); err != nil {
			return err
		}

		// Log humano do pedido, no mesmo commit.
		itensMsg := make([]string, 0, len(resolved))
		for _, r := range resolved {
			itensMsg = append(itensMsg, fmt.Sprintf("%s (%d un)", r.nome, r.quantidade))
		}
		conteudo := fmt.Sprintf("Pedido #%s criado. Itens: %s.", pedido.ID, strings.Join(itensMsg, ", "))
		if req.Mensagem != nil && *req.Mensagem != "" {
			conteudo += " Mensagem adicional: " + *req.Mensagem
		}
		msg := &model.Mensagem{
			FornecedorID: &fornecedorID,
			Conteudo:     conteudo,
			DataEnvio:    time.Now().UTC(),
			Status:       model.MensagemLogSistema,
		}
		return s.mensagemRepo.CreateTx(tx, msg)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := pedidoToResponse(&pedido)
	resp.Fornecedor = fornecedor.Nome
	for i, r := range resolved {
		resp.Itens[i].Produto = r.nome
	}
	return resp, nil
}

func (s *pedidoService) ReceberPedido(ctx context.Context, usuarioID uuid.UUID, pedidoID uuid.UUID, req dto.ReceberPedidoRequest) (*dto.PedidoResponse, error) {
	var pedido *model.PedidoFornecedor
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		pedido, err = s.repo.FindByIDForUpdate(tx, pedidoID)
		if err != nil {
			return errors.New("pedido não encontrado")
		}
		if pedido.Status != model.PedidoPendente {
			return ErrPedidoJaProcessado
		}

		for _, item := range pedido.Itens {
			recebida, ok := req.Recebidos[item.ProdutoID.String()]
			if !ok {
				recebida = item.QuantidadePedida
			}
			if recebida < 0 {
				return fmt.Errorf("quantidade recebida inválida para o produto %s", item.ProdutoID)
			}
			if recebida == 0 {
				continue
			}
			observacao := fmt.Sprintf("Recebimento do Pedido #%s", pedido.ID)
			if _, err := s.estoque.AjustarEstoqueTx(ctx, tx, item.ProdutoID, recebida, model.MovEntrada, &usuarioID, observacao); err != nil {
				return err
			}
		}
		return s.repo.UpdateStatusTx(tx, pedidoID, model.PedidoRecebido)
	})
	if txErr != nil {
		return nil, txErr
	}

	pedido.Status = model.PedidoRecebido
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("pedido não encontrado")
	}
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) ListarPedidos(ctx context.Context) ([]dto.PedidoResponse, error) {
	pedidos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		resp = append(resp, *pedidoToResponse(&p))
	}
	return resp, nil
}

func (s *pedidoService) ListarMensagens(ctx context.Context) ([]dto.MensagemResponse, error) {
	msgs, err := s.mensagemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MensagemResponse, 0, len(msgs))
	for _, m := range msgs {
		item := dto.MensagemResponse{
			ID:        m.ID.String(),
			Conteudo:  m.Conteudo,
			DataEnvio: m.DataEnvio.Format(time.RFC3339),
			Status:    m.Status,
		}
		if m.Fornecedor != nil {
			item.Fornecedor = m.Fornecedor.Nome
		}
		if m.Produto != nil {
			item.Produto = m.Produto.Nome
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func pedidoToResponse(p *model.PedidoFornecedor) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:         p.ID.String(),
		DataPedido: p.DataPedido.Format(time.RFC3339),
		Status:     p.Status,
	}
	if p.Fornecedor != nil {
		resp.Fornecedor = p.Fornecedor.Nome
	}
	for _, item := range p.Itens {
		nome := ""
		if item.Produto != nil {
			nome = item.Produto.Nome
		}
		resp.Itens = append(resp.Itens, dto.ItemPedidoResponse{
			ProdutoID:  item.ProdutoID.String(),
			Produto:    nome,
			Quantidade: item.QuantidadePedida,
		})
	}
	return resp
}
