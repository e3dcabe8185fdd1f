package handler

import (
	"net/http"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/apierror"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar categoria
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarCategoriaRequest true "Nome da categoria"
// @Success      201  {object} dto.CategoriaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/categorias [post]
func (h *CategoriasHandler) Criar(c *gin.Context) {
	var req dto.CriarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar categorias
// @Tags         categorias
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.CategoriaResponse
// @Router       /v1/categorias [get]
func (h *CategoriasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar categorias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CriarPagamento godoc
// @Summary      Cadastrar forma de pagamento
// @Tags         pagamentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarPagamentoRequest true "Forma de pagamento"
// @Success      201  {object} dto.PagamentoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/pagamentos [post]
func (h *CategoriasHandler) CriarPagamento(c *gin.Context) {
	var req dto.CriarPagamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarPagamento(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarPagamentos godoc
// @Summary      Listar formas de pagamento
// @Tags         pagamentos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.PagamentoResponse
// @Router       /v1/pagamentos [get]
func (h *CategoriasHandler) ListarPagamentos(c *gin.Context) {
	resp, err := h.svc.ListarPagamentos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar pagamentos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
