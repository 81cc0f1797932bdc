package risk

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/erp-crediario/backend/internal/domain/sale"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func saleOn(day time.Time, total string) *sale.Sale {
	return &sale.Sale{
		ID:         "sale-" + day.Format("2006-01-02"),
		ClientID:   "client-1",
		TotalValue: decimal.RequireFromString(total),
		SaleDate:   day,
	}
}

func TestComputeVelocity(t *testing.T) {
	asOf := date(2025, time.June, 30)
	sales := []*sale.Sale{
		saleOn(date(2025, time.June, 1), "1200.00"),
		saleOn(date(2025, time.June, 15), "800.00"),
		saleOn(date(2025, time.June, 29), "1000.00"),
	}

	v := ComputeVelocity(sales, 60, asOf)

	assert.Equal(t, "3000.00", v.TotalRevenue.StringFixed(2))
	assert.Equal(t, "50.00", v.DailyAverage.StringFixed(2))
	assert.Equal(t, 60, v.PeriodDays)
	assert.Equal(t, 3, v.SalesCount)
}

func TestComputeVelocityFiltersWindow(t *testing.T) {
	asOf := date(2025, time.June, 30)
	sales := []*sale.Sale{
		saleOn(date(2025, time.January, 10), "9999.00"), // fora da janela
		saleOn(date(2025, time.May, 30), "600.00"),
		saleOn(date(2025, time.July, 1), "5000.00"), // futura, fora da janela
	}

	v := ComputeVelocity(sales, 60, asOf)

	assert.Equal(t, "600.00", v.TotalRevenue.StringFixed(2))
	assert.Equal(t, 1, v.SalesCount)
	assert.Equal(t, "10.00", v.DailyAverage.StringFixed(2))
}

func TestComputeVelocityEmptyWindow(t *testing.T) {
	v := ComputeVelocity(nil, 60, date(2025, time.June, 30))

	assert.True(t, v.DailyAverage.IsZero())
	assert.True(t, v.TotalRevenue.IsZero())
	assert.Equal(t, 0, v.SalesCount)
	assert.Equal(t, 60, v.PeriodDays)
}

func TestComputeVelocityDefaultWindow(t *testing.T) {
	v := ComputeVelocity(nil, 0, date(2025, time.June, 30))
	assert.Equal(t, DefaultWindowDays, v.PeriodDays)
}

func TestComputeVelocityDilutesZeroSaleDays(t *testing.T) {
	// uma única venda de 300 numa janela de 30 dias: média 10/dia,
	// não 300/dia
	asOf := date(2025, time.June, 30)
	v := ComputeVelocity([]*sale.Sale{saleOn(date(2025, time.June, 20), "300.00")}, 30, asOf)
	assert.Equal(t, "10.00", v.DailyAverage.StringFixed(2))
}
