package handler

import (
	"errors"
	"net/http"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/apierror"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar cliente
// @Description  Cria o cliente validando o dígito verificador do CPF; CPF duplicado retorna 409.
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarClienteRequest true "Dados do cliente"
// @Success      201  {object} dto.ClienteResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/clientes [post]
func (h *ClientesHandler) Criar(c *gin.Context) {
	var req dto.CriarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCPFInvalido):
			c.JSON(http.StatusBadRequest, apierror.New("CPF inválido"))
		case errors.Is(err, service.ErrCPFJaCadastrado):
			c.JSON(http.StatusConflict, apierror.New("CPF já cadastrado"))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// BuscarPorCPF godoc
// @Summary      Buscar cliente por CPF
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        cpf query string true "CPF (com ou sem pontuação)"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/busca [get]
func (h *ClientesHandler) BuscarPorCPF(c *gin.Context) {
	cpf := c.Query("cpf")
	if cpf == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Informe o CPF"))
		return
	}
	resp, err := h.svc.BuscarPorCPF(c.Request.Context(), cpf)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cliente não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter godoc
// @Summary      Detalhar cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do cliente"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id} [get]
func (h *ClientesHandler) Obter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cliente não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ClienteResponse
// @Router       /v1/clientes [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar clientes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
