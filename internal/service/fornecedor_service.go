package service

import (
	"context"
	"errors"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FornecedorService interface {
	Criar(ctx context.Context, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.FornecedorResponse, error)
	Listar(ctx context.Context) ([]dto.FornecedorResponse, error)
}

type fornecedorService struct {
	repo repository.FornecedorRepository
}

func NewFornecedorService(repo repository.FornecedorRepository) FornecedorService {
	return &fornecedorService{repo: repo}
}

func (s *fornecedorService) Criar(ctx context.Context, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error) {
	cnpj := somenteDigitos(req.CNPJ)
	if len(cnpj) != 14 {
		return nil, errors.New("cnpj inválido")
	}

	fornecedor := model.Fornecedor{
		Nome:     req.Nome,
		CNPJ:     cnpj,
		Email:    req.Email,
		Telefone: req.Telefone,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		end := model.Endereco{CEP: req.CEP, Numero: req.Numero}
		if tx != nil {
			if err := tx.Create(&end).Error; err != nil {
				return err
			}
			fornecedor.EnderecoID = end.ID
		}
		return s.repo.CreateTx(tx, &fornecedor)
	})
	if txErr != nil {
		return nil, txErr
	}
	return fornecedorToResponse(&fornecedor), nil
}

func (s *fornecedorService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.FornecedorResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("fornecedor não encontrado")
	}
	return fornecedorToResponse(f), nil
}

func (s *fornecedorService) Listar(ctx context.Context) ([]dto.FornecedorResponse, error) {
	fornecedores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FornecedorResponse, 0, len(fornecedores))
	for i := range fornecedores {
		out = append(out, *fornecedorToResponse(&fornecedores[i]))
	}
	return out, nil
}

func fornecedorToResponse(f *model.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:       f.ID.String(),
		Nome:     f.Nome,
		CNPJ:     f.CNPJ,
		Email:    f.Email,
		Telefone: f.Telefone,
	}
}
