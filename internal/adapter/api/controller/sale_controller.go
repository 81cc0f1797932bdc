package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/erp-crediario/backend/internal/adapter/api/dto"
	"github.com/erp-crediario/backend/internal/adapter/repository"
	clientdomain "github.com/erp-crediario/backend/internal/domain/client"
	saledomain "github.com/erp-crediario/backend/internal/domain/sale"
	"github.com/erp-crediario/backend/pkg/logger"
)

// SaleController gerencia as requisições de vendas a prazo e parcelas
type SaleController struct {
	saleRepo   saledomain.Repository
	clientRepo clientdomain.Repository
	logger     logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, clientRepo clientdomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:   saleRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create cria uma nova venda a prazo com o cronograma de parcelas
// @Summary Criar venda
// @Description Cria uma venda a prazo gerando todas as parcelas
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	firstDueDate, err := dto.ParseDate(req.FirstDueDate, time.Time{})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data de vencimento inválida", err.Error()))
		return
	}

	saleDate, err := dto.ParseDate(req.SaleDate, time.Now())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data da venda inválida", err.Error()))
		return
	}

	// O cliente precisa existir antes da venda
	if _, err := c.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	sale, err := saledomain.NewSale(req.ClientID, req.TotalValue,
		req.TotalInstallments, saledomain.PaymentFrequency(req.PaymentFrequency),
		firstDueDate, saleDate, req.Notes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar venda", err.Error()))
		return
	}

	if err := c.saleRepo.Create(ctx, sale); err != nil {
		c.logger.Error("erro ao criar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.FromSale(sale))
}

// Get busca uma venda pelo ID, com suas parcelas
// @Summary Buscar venda
// @Description Busca uma venda pelo ID, incluindo as parcelas
// @Tags sales
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	sale, err := c.saleRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FromSale(sale))
}

// List lista as vendas
// @Summary Listar vendas
// @Description Lista as vendas com paginação
// @Tags sales
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {array} dto.SaleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	sales, err := c.saleRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FromSales(sales))
}

// ListByClient lista as vendas de um cliente
// @Summary Listar vendas do cliente
// @Description Lista as vendas de um cliente com paginação
// @Tags sales
// @Produce json
// @Param id path string true "ID do cliente"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {array} dto.SaleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id}/sales [get]
func (c *SaleController) ListByClient(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	sales, err := c.saleRepo.FindByClient(ctx, ctx.Param("id"), pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas do cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FromSales(sales))
}

// ListInstallments lista as parcelas de uma venda
// @Summary Listar parcelas
// @Description Lista as parcelas de uma venda, atualizando antes o status
// @Description das vencidas
// @Tags installments
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {array} dto.InstallmentResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/installments [get]
func (c *SaleController) ListInstallments(ctx *gin.Context) {
	// Varredura na leitura: pendente -> atrasado pela passagem do tempo
	if _, err := c.saleRepo.MarkOverdue(ctx, time.Now()); err != nil {
		c.logger.Warn("erro ao marcar parcelas vencidas", "error", err)
	}

	installments, err := c.saleRepo.FindInstallmentsBySale(ctx, ctx.Param("id"))
	if err != nil {
		c.logger.Error("erro ao listar parcelas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar parcelas", err.Error()))
		return
	}

	out := make([]dto.InstallmentResponse, 0, len(installments))
	for _, inst := range installments {
		out = append(out, dto.FromInstallment(inst))
	}
	ctx.JSON(http.StatusOK, out)
}

// GetInstallment busca uma parcela pelo ID
// @Summary Buscar parcela
// @Description Busca uma parcela pelo ID
// @Tags installments
// @Produce json
// @Param id path string true "ID da parcela"
// @Success 200 {object} dto.InstallmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /installments/{id} [get]
func (c *SaleController) GetInstallment(ctx *gin.Context) {
	installment, err := c.saleRepo.FindInstallmentByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrInstallmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "parcela não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar parcela", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar parcela", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FromInstallment(installment))
}

// ListOverdue lista as parcelas vencidas de todos os clientes
// @Summary Relatório de parcelas vencidas
// @Description Lista as parcelas vencidas com os dados do cliente
// @Tags installments
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {array} dto.OverdueInstallmentResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /installments/overdue [get]
func (c *SaleController) ListOverdue(ctx *gin.Context) {
	if _, err := c.saleRepo.MarkOverdue(ctx, time.Now()); err != nil {
		c.logger.Warn("erro ao marcar parcelas vencidas", "error", err)
	}

	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	overdue, err := c.saleRepo.FindOverdueInstallments(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar parcelas vencidas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar parcelas vencidas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FromOverdueInstallments(overdue))
}

// Delete remove uma venda e suas parcelas
// @Summary Remover venda
// @Description Remove uma venda; as parcelas são removidas em cascata
// @Tags sales
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	if err := c.saleRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("venda removida com sucesso", nil))
}

// RecordPayment registra o pagamento de uma parcela
// @Summary Registrar pagamento
// @Description Registra um pagamento em uma parcela, atualizando a parcela
// @Description e o total pago da venda atomicamente
// @Tags installments
// @Accept json
// @Produce json
// @Param id path string true "ID da parcela"
// @Param payment body dto.PaymentRequest true "Dados do pagamento"
// @Success 200 {object} dto.InstallmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /installments/{id}/payments [post]
func (c *SaleController) RecordPayment(ctx *gin.Context) {
	var req dto.PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	paidDate, err := dto.ParseDate(req.PaidDate, time.Now())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data do pagamento inválida", err.Error()))
		return
	}

	installment, err := c.saleRepo.RecordPayment(ctx, ctx.Param("id"), req.PaidAmount, paidDate)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInstallmentNotFound), errors.Is(err, repository.ErrSaleNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "parcela não encontrada", ""))
		case errors.Is(err, saledomain.ErrAlreadyPaid):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "parcela já paga", err.Error()))
		case errors.Is(err, saledomain.ErrInvalidPaymentAmount), errors.Is(err, saledomain.ErrPaymentExceedsAmount):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "pagamento inválido", err.Error()))
		case errors.Is(err, repository.ErrConcurrencyConflict):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "conflito de concorrência", err.Error()))
		default:
			c.logger.Error("erro ao registrar pagamento", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar pagamento", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.FromInstallment(installment))
}
