package risk

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func velocityWithDaily(daily string) Velocity {
	return Velocity{
		DailyAverage: decimal.RequireFromString(daily),
		PeriodDays:   60,
	}
}

func TestAnalyzeProjection(t *testing.T) {
	now := date(2025, time.June, 1)
	checkDate := date(2025, time.June, 11)

	a, err := Analyze(
		decimal.RequireFromString("1200.00"),
		checkDate,
		decimal.RequireFromString("1000.00"),
		decimal.RequireFromString("5000.00"),
		velocityWithDaily("50.00"),
		now,
	)
	require.NoError(t, err)

	assert.Equal(t, 10, a.DaysUntilCheck)
	assert.Equal(t, "500.00", a.ProjectedRevenue.StringFixed(2))
	assert.Equal(t, "1500.00", a.AvailableFunds.StringFixed(2))
	assert.Equal(t, "125.00", a.CoveragePercentage.StringFixed(2))
	assert.Equal(t, RiskLow, a.RiskLevel)
	assert.Equal(t, recommendations[RiskLow], a.Recommendation)
	assert.Equal(t, now, a.AssessedAt)

	// o valor do estoque é reportado, mas não soma nos fundos disponíveis
	assert.Equal(t, "5000.00", a.StockValue.StringFixed(2))
}

func TestAnalyzeRiskBands(t *testing.T) {
	now := date(2025, time.June, 1)
	checkDate := date(2025, time.June, 1)

	tests := []struct {
		name     string
		balance  string
		want     RiskLevel
		coverage string
	}{
		{"cobertura 120.00 é MEDIO", "120.00", RiskMedium, "120.00"},
		{"cobertura 120.01 é BAIXO", "120.01", RiskLow, "120.01"},
		{"cobertura 100.00 é MEDIO", "100.00", RiskMedium, "100.00"},
		{"cobertura 99.99 é ALTO", "99.99", RiskHigh, "99.99"},
		{"cobertura 0 é ALTO", "0.00", RiskHigh, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Analyze(
				decimal.RequireFromString("100.00"),
				checkDate,
				decimal.RequireFromString(tt.balance),
				decimal.Zero,
				velocityWithDaily("0.00"),
				now,
			)
			require.NoError(t, err)
			assert.Equal(t, tt.coverage, a.CoveragePercentage.StringFixed(2))
			assert.Equal(t, tt.want, a.RiskLevel)
			assert.Equal(t, recommendations[tt.want], a.Recommendation)
		})
	}
}

func TestAnalyzePastCheckDate(t *testing.T) {
	now := date(2025, time.June, 10)
	checkDate := date(2025, time.June, 5)

	a, err := Analyze(
		decimal.RequireFromString("500.00"),
		checkDate,
		decimal.RequireFromString("600.00"),
		decimal.Zero,
		velocityWithDaily("50.00"),
		now,
	)
	require.NoError(t, err)

	// os dias negativos são reportados, mas a projeção trunca em zero
	assert.Equal(t, -5, a.DaysUntilCheck)
	assert.True(t, a.ProjectedRevenue.IsZero())
	assert.Equal(t, "600.00", a.AvailableFunds.StringFixed(2))
	assert.Equal(t, "120.00", a.CoveragePercentage.StringFixed(2))
	assert.Equal(t, RiskMedium, a.RiskLevel)
}

func TestAnalyzeInvalidCheckAmount(t *testing.T) {
	now := date(2025, time.June, 1)

	_, err := Analyze(decimal.Zero, now, decimal.Zero, decimal.Zero, velocityWithDaily("0.00"), now)
	assert.ErrorIs(t, err, ErrInvalidCheckAmount)

	_, err = Analyze(decimal.RequireFromString("-10.00"), now, decimal.Zero, decimal.Zero, velocityWithDaily("0.00"), now)
	assert.ErrorIs(t, err, ErrInvalidCheckAmount)
}
