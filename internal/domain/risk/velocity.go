package risk

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp-crediario/backend/internal/domain/sale"
	"github.com/erp-crediario/backend/pkg/dateutil"
	"github.com/erp-crediario/backend/pkg/money"
)

// DefaultWindowDays é a janela padrão para o cálculo de velocidade de vendas
const DefaultWindowDays = 60

// Velocity é a velocidade de vendas: a receita média diária de uma janela
// retroativa, usada para projetar entrada de caixa futura
type Velocity struct {
	DailyAverage decimal.Decimal `json:"daily_average"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	PeriodDays   int             `json:"period_days"`
	SalesCount   int             `json:"sales_count"`
}

// ComputeVelocity calcula a velocidade de vendas sobre a janela de
// windowDays terminando em asOf. A média divide pela janela inteira, não
// pelos dias com venda: dias sem venda diluem a média. Sem vendas na
// janela, a média é zero. windowDays não positivo usa a janela padrão.
func ComputeVelocity(sales []*sale.Sale, windowDays int, asOf time.Time) Velocity {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	end := dateutil.DateOnly(asOf)
	start := dateutil.AddDays(end, -windowDays)

	total := decimal.Zero
	count := 0
	for _, s := range sales {
		day := dateutil.DateOnly(s.SaleDate)
		if day.Before(start) || day.After(end) {
			continue
		}
		total = total.Add(s.TotalValue)
		count++
	}

	return Velocity{
		DailyAverage: money.Round(total.Div(decimal.NewFromInt(int64(windowDays)))),
		TotalRevenue: total,
		PeriodDays:   windowDays,
		SalesCount:   count,
	}
}
