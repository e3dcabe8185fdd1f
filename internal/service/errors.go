package service

import (
	"errors"
	"fmt"
)

// Business-rule errors reported to callers before commit.
var (
	ErrPedidoJaProcessado   = errors.New("pedido já processado")
	ErrClienteNaoEncontrado = errors.New("cliente não encontrado")
	ErrProdutoNaoEncontrado = errors.New("produto não encontrado")
	ErrCPFInvalido          = errors.New("CPF inválido")
	ErrCPFJaCadastrado      = errors.New("CPF já cadastrado")
)

// EstoqueInsuficienteError names the short product and how much is available.
type EstoqueInsuficienteError struct {
	Produto    string
	Disponivel int
	Solicitado int
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("estoque insuficiente para %q: disponível %d, solicitado %d",
		e.Produto, e.Disponivel, e.Solicitado)
}
