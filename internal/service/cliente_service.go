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

type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	// BuscarPorCPF accepts a formatted or digits-only CPF.
	BuscarPorCPF(ctx context.Context, cpf string) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	cpf, ok := normalizaCPF(req.CPF)
	if !ok {
		return nil, ErrCPFInvalido
	}
	if _, err := s.repo.FindByCPF(ctx, cpf); err == nil {
		return nil, ErrCPFJaCadastrado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cliente := model.Cliente{
		Nome:     req.Nome,
		CPF:      cpf,
		Telefone: req.Telefone,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		end := model.Endereco{}
		if req.CEP != nil {
			end.CEP = *req.CEP
		}
		if req.Numero != nil {
			end.Numero = *req.Numero
		}
		if tx != nil {
			if err := tx.Create(&end).Error; err != nil {
				return err
			}
			cliente.EnderecoID = end.ID
		}
		return s.repo.CreateTx(tx, &cliente)
	})
	if txErr != nil {
		return nil, txErr
	}
	return clienteToResponse(&cliente), nil
}

func (s *clienteService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) BuscarPorCPF(ctx context.Context, cpf string) (*dto.ClienteResponse, error) {
	digits := somenteDigitos(cpf)
	c, err := s.repo.FindByCPF(ctx, digits)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *clienteToResponse(&clientes[i]))
	}
	return out, nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID.String(),
		Nome:     c.Nome,
		CPF:      c.CPF,
		Telefone: c.Telefone,
	}
}

func somenteDigitos(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// normalizaCPF strips punctuation and runs the two-digit checksum.
// Sequences of a single repeated digit (000..., 111...) are rejected.
func normalizaCPF(cpf string) (string, bool) {
	digits := somenteDigitos(cpf)
	if len(digits) != 11 {
		return "", false
	}
	todosIguais := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			todosIguais = false
			break
		}
	}
	if todosIguais {
		return "", false
	}

	dv := func(n int) byte {
		soma := 0
		for i := 0; i < n; i++ {
			soma += int(digits[i]-'0') * (n + 1 - i)
		}
		resto := (soma * 10) % 11
		if resto == 10 {
			resto = 0
		}
		return byte('0' + resto)
	}
	if dv(9) != digits[9] || dv(10) != digits[10] {
		return "", false
	}
	return digits, true
}
