package handler

import (
	"net/http"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/apierror"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FornecedoresHandler struct{ svc service.FornecedorService }

func NewFornecedoresHandler(svc service.FornecedorService) *FornecedoresHandler {
	return &FornecedoresHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar fornecedor
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarFornecedorRequest true "Dados do fornecedor"
// @Success      201  {object} dto.FornecedorResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/fornecedores [post]
func (h *FornecedoresHandler) Criar(c *gin.Context) {
	var req dto.CriarFornecedorRequest
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

// Obter godoc
// @Summary      Detalhar fornecedor
// @Tags         fornecedores
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do fornecedor"
// @Success      200 {object} dto.FornecedorResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/fornecedores/{id} [get]
func (h *FornecedoresHandler) Obter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Fornecedor não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar fornecedores
// @Tags         fornecedores
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.FornecedorResponse
// @Router       /v1/fornecedores [get]
func (h *FornecedoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar fornecedores"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
