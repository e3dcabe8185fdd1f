package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/apierror"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/middleware"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Criar godoc
// @Summary      Criar pedido ao fornecedor
// @Description  Cria o pedido com status Pendente e registra a mensagem de log na mesma transação. Não altera estoque.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarPedidoRequest true "Itens do pedido"
// @Success      201  {object} dto.PedidoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/pedidos [post]
func (h *PedidosHandler) Criar(c *gin.Context) {
	var req dto.CriarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.CriarPedido(c.Request.Context(), usuarioID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Receber godoc
// @Summary      Receber pedido
// @Description  Processa o recebimento de um pedido Pendente: uma ENTRADA por linha e transição única para Recebido. Corpo opcional informa quantidades divergentes; linhas ausentes assumem a quantidade pedida. Pedido já recebido retorna 409.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                   true  "UUID do pedido"
// @Param        body body dto.ReceberPedidoRequest false "Quantidades recebidas"
// @Success      200  {object} dto.PedidoResponse
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/pedidos/{id}/receber [post]
func (h *PedidosHandler) Receber(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	// Body is optional — an empty body receives everything as ordered.
	var req dto.ReceberPedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.ReceberPedido(c.Request.Context(), usuarioID, id, req)
	if err != nil {
		if errors.Is(err, service.ErrPedidoJaProcessado) {
			c.JSON(http.StatusConflict, apierror.New("Pedido já processado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter godoc
// @Summary      Detalhar pedido
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do pedido"
// @Success      200 {object} dto.PedidoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/pedidos/{id} [get]
func (h *PedidosHandler) Obter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Pedido não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.PedidoResponse
// @Router       /v1/pedidos [get]
func (h *PedidosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarPedidos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar pedidos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Mensagens godoc
// @Summary      Listar mensagens do sistema
// @Description  Log de pedidos criados e alertas de estoque, mais recentes primeiro.
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.MensagemResponse
// @Router       /v1/mensagens [get]
func (h *PedidosHandler) Mensagens(c *gin.Context) {
	resp, err := h.svc.ListarMensagens(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar mensagens"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
