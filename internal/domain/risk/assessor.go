package risk

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp-crediario/backend/pkg/dateutil"
	"github.com/erp-crediario/backend/pkg/money"
)

var ErrInvalidCheckAmount = errors.New("valor do cheque deve ser maior que zero")

// RiskLevel classifica o risco de um cheque não ser coberto
type RiskLevel string

const (
	RiskLow    RiskLevel = "BAIXO" // Cobertura acima de 120%
	RiskMedium RiskLevel = "MEDIO" // Cobertura entre 100% e 120%
	RiskHigh   RiskLevel = "ALTO"  // Cobertura abaixo de 100%
)

var recommendations = map[RiskLevel]string{
	RiskLow:    "Fundos projetados cobrem confortavelmente o cheque",
	RiskMedium: "Cobertura apertada — monitore vendas até o vencimento",
	RiskHigh:   "Risco alto de não cobrir o cheque — negocie prazo ou reforce caixa",
}

// RiskAssessment é o resultado de uma análise de risco de cheque. É um
// valor calculado, nunca persistido. O valor do estoque é informativo e
// não entra nos fundos disponíveis.
type RiskAssessment struct {
	RiskLevel          RiskLevel       `json:"risk_level"`
	CheckAmount        decimal.Decimal `json:"check_amount"`
	CheckDate          time.Time       `json:"check_date"`
	DaysUntilCheck     int             `json:"days_until_check"`
	ProjectedRevenue   decimal.Decimal `json:"projected_revenue"`
	CurrentBalance     decimal.Decimal `json:"current_balance"`
	StockValue         decimal.Decimal `json:"stock_value"`
	AvailableFunds     decimal.Decimal `json:"available_funds"`
	CoveragePercentage decimal.Decimal `json:"coverage_percentage"`
	Recommendation     string          `json:"recommendation"`
	AssessedAt         time.Time       `json:"assessed_at"`
}

// Analyze avalia o risco de honrar um cheque na data do seu vencimento,
// combinando o saldo atual com a receita projetada pela velocidade de
// vendas. Cheque com data já passada é reportado com dias negativos, mas
// a janela de projeção é truncada em zero: só conta o caixa em mãos.
func Analyze(
	checkAmount decimal.Decimal,
	checkDate time.Time,
	currentBalance decimal.Decimal,
	stockValue decimal.Decimal,
	velocity Velocity,
	now time.Time,
) (*RiskAssessment, error) {
	if !checkAmount.IsPositive() {
		return nil, ErrInvalidCheckAmount
	}

	daysUntilCheck := dateutil.DaysBetween(now, checkDate)
	projectionDays := daysUntilCheck
	if projectionDays < 0 {
		projectionDays = 0
	}

	projectedRevenue := money.Round(velocity.DailyAverage.Mul(decimal.NewFromInt(int64(projectionDays))))
	availableFunds := currentBalance.Add(projectedRevenue)
	coverage := availableFunds.Div(checkAmount).Mul(decimal.NewFromInt(100)).Round(2)

	return &RiskAssessment{
		RiskLevel:          classify(coverage),
		CheckAmount:        checkAmount,
		CheckDate:          dateutil.DateOnly(checkDate),
		DaysUntilCheck:     daysUntilCheck,
		ProjectedRevenue:   projectedRevenue,
		CurrentBalance:     currentBalance,
		StockValue:         stockValue,
		AvailableFunds:     availableFunds,
		CoveragePercentage: coverage,
		Recommendation:     recommendations[classify(coverage)],
		AssessedAt:         now,
	}, nil
}

// classify retorna a faixa de risco de uma cobertura percentual
func classify(coverage decimal.Decimal) RiskLevel {
	switch {
	case coverage.GreaterThan(decimal.NewFromInt(120)):
		return RiskLow
	case coverage.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return RiskMedium
	default:
		return RiskHigh
	}
}
