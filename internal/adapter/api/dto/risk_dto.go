package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp-crediario/backend/internal/domain/risk"
)

// RiskCheckRequest representa a requisição de análise de risco de cheque.
// Quando stock_value não é informado, o servidor usa a valoração do
// estoque a preço de custo. window_days ajusta a janela da velocidade de
// vendas (padrão 60 dias).
type RiskCheckRequest struct {
	CheckAmount    decimal.Decimal  `json:"check_amount" binding:"required"`
	CheckDate      string           `json:"check_date" binding:"required"` // formato 2006-01-02
	CurrentBalance decimal.Decimal  `json:"current_balance"`
	StockValue     *decimal.Decimal `json:"stock_value"`
	WindowDays     int              `json:"window_days"`
}

// RiskAssessmentResponse representa a resposta da análise de risco
type RiskAssessmentResponse struct {
	RiskLevel          string          `json:"risk_level"`
	CheckAmount        decimal.Decimal `json:"check_amount"`
	CheckDate          string          `json:"check_date"`
	DaysUntilCheck     int             `json:"days_until_check"`
	ProjectedRevenue   decimal.Decimal `json:"projected_revenue"`
	CurrentBalance     decimal.Decimal `json:"current_balance"`
	StockValue         decimal.Decimal `json:"stock_value"`
	AvailableFunds     decimal.Decimal `json:"available_funds"`
	CoveragePercentage decimal.Decimal `json:"coverage_percentage"`
	Recommendation     string          `json:"recommendation"`
	Velocity           VelocityInfo    `json:"sales_velocity"`
	AssessedAt         time.Time       `json:"assessed_at"`
}

// VelocityInfo representa a velocidade de vendas usada na análise
type VelocityInfo struct {
	DailyAverage decimal.Decimal `json:"daily_average"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	PeriodDays   int             `json:"period_days"`
	SalesCount   int             `json:"sales_count"`
}

// FromRiskAssessment converte a avaliação de risco para a resposta da API
func FromRiskAssessment(a *risk.RiskAssessment, v risk.Velocity) RiskAssessmentResponse {
	return RiskAssessmentResponse{
		RiskLevel:          string(a.RiskLevel),
		CheckAmount:        a.CheckAmount,
		CheckDate:          a.CheckDate.Format(dateLayout),
		DaysUntilCheck:     a.DaysUntilCheck,
		ProjectedRevenue:   a.ProjectedRevenue,
		CurrentBalance:     a.CurrentBalance,
		StockValue:         a.StockValue,
		AvailableFunds:     a.AvailableFunds,
		CoveragePercentage: a.CoveragePercentage,
		Recommendation:     a.Recommendation,
		Velocity: VelocityInfo{
			DailyAverage: v.DailyAverage,
			TotalRevenue: v.TotalRevenue,
			PeriodDays:   v.PeriodDays,
			SalesCount:   v.SalesCount,
		},
		AssessedAt: a.AssessedAt,
	}
}
