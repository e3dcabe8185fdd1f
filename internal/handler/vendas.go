package handler

import (
	"errors"
	"net/http"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/apierror"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/middleware"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VendasHandler struct{ svc service.VendaService }

func NewVendasHandler(svc service.VendaService) *VendasHandler { return &VendasHandler{svc: svc} }

// Registrar godoc
// @Summary      Registrar venda
// @Description  Cria a venda em transação única: itens com preço congelado, baixa de estoque linha a linha e movimentação SAÍDA por item. Estoque insuficiente rejeita a venda inteira.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarVendaRequest true "Detalhe da venda"
// @Success      201  {object} dto.VendaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/vendas [post]
func (h *VendasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.RegistrarVenda(c.Request.Context(), usuarioID, req)
	if err != nil {
		var insuf *service.EstoqueInsuficienteError
		if errors.As(err, &insuf) {
			c.JSON(http.StatusConflict, apierror.New(insuf.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obter godoc
// @Summary      Detalhar venda
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da venda"
// @Success      200 {object} dto.VendaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/vendas/{id} [get]
func (h *VendasHandler) Obter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Venda não encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar vendas
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        data  query string false "Data YYYY-MM-DD"
// @Param        page  query int    false "Página (default 1)"
// @Param        limit query int    false "Registros por página (default 50)"
// @Success      200   {object} dto.VendaListResponse
// @Router       /v1/vendas [get]
func (h *VendasHandler) Listar(c *gin.Context) {
	var filter dto.VendaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarVendas(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar vendas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
