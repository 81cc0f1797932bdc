package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/erp-crediario/backend/internal/adapter/api/dto"
	productdomain "github.com/erp-crediario/backend/internal/domain/product"
	"github.com/erp-crediario/backend/internal/domain/risk"
	saledomain "github.com/erp-crediario/backend/internal/domain/sale"
	"github.com/erp-crediario/backend/pkg/dateutil"
	"github.com/erp-crediario/backend/pkg/logger"
)

// RiskController gerencia as análises de risco de cheque
type RiskController struct {
	saleRepo    saledomain.Repository
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewRiskController cria uma nova instância de RiskController
func NewRiskController(saleRepo saledomain.Repository, productRepo productdomain.Repository, logger logger.Logger) *RiskController {
	return &RiskController{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// AssessCheck avalia o risco de honrar um cheque futuro
// @Summary Analisar risco de cheque
// @Description Combina a velocidade de vendas, o saldo atual e a valoração
// @Description do estoque em uma faixa de risco com recomendação
// @Tags risk
// @Accept json
// @Produce json
// @Param check body dto.RiskCheckRequest true "Dados do cheque"
// @Success 200 {object} dto.RiskAssessmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /risk/check [post]
func (c *RiskController) AssessCheck(ctx *gin.Context) {
	var req dto.RiskCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	checkDate, err := dto.ParseDate(req.CheckDate, time.Time{})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data do cheque inválida", err.Error()))
		return
	}

	now := time.Now()
	windowDays := req.WindowDays
	if windowDays <= 0 {
		windowDays = risk.DefaultWindowDays
	}

	// Vendas da janela retroativa para a velocidade
	from := dateutil.AddDays(dateutil.DateOnly(now), -windowDays)
	sales, err := c.saleRepo.FindByPeriod(ctx, from, now)
	if err != nil {
		c.logger.Error("erro ao buscar vendas do período", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar vendas", err.Error()))
		return
	}
	velocity := risk.ComputeVelocity(sales, windowDays, now)

	// Valoração do estoque quando o chamador não informa uma
	stockValue := req.StockValue
	if stockValue == nil {
		total, err := c.productRepo.TotalStockValue(ctx)
		if err != nil {
			c.logger.Error("erro ao calcular valor do estoque", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular valor do estoque", err.Error()))
			return
		}
		stockValue = &total
	}

	assessment, err := risk.Analyze(req.CheckAmount, checkDate,
		req.CurrentBalance, *stockValue, velocity, now)
	if err != nil {
		if errors.Is(err, risk.ErrInvalidCheckAmount) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "valor do cheque inválido", err.Error()))
			return
		}
		c.logger.Error("erro ao analisar risco", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao analisar risco", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FromRiskAssessment(assessment, velocity))
}
